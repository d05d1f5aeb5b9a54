package utils

import "cmp"

// IsInRange reports whether lo <= value <= hi.
func IsInRange[T cmp.Ordered](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

// Clamp limits value to [lo, hi].
func Clamp[T cmp.Ordered](lo, value, hi T) T {
	return max(lo, min(value, hi))
}
