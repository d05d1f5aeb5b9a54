package pod_test

import (
	"fmt"

	"union-engine/pod"
)

func Example() {
	var u pod.Of2[int, float32]

	*pod.Get[int](&u) += 5
	fmt.Println(pod.Has[int](u), *pod.Find[int](&u))

	snapshot := u
	pod.Set(&u, float32(0.5))

	fmt.Println(pod.GetValueOrDefault(u, -1), pod.GetValueOrDefault(snapshot, -1))
	fmt.Println(u, snapshot)
	// Output:
	// true 5
	// -1 5
	// 0.5 5
}
