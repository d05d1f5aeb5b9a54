package pod

import (
	"fmt"
	"reflect"

	"union-engine/internal/core"
	"union-engine/primitive"
	"union-engine/sum"
)

func indexOf[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G]) int {
	return core.MustIndex(u.list(), reflect.TypeFor[T]())
}

// Has reports whether T is the live alternative.
func Has[T, A, B, C, D, E, F, G any](u Union[A, B, C, D, E, F, G]) bool {
	return u.live == uint8(indexOf[T](&u))+1
}

// TypeIndexOf returns the tag T has in u, live or not.
func TypeIndexOf[T, A, B, C, D, E, F, G any](u Union[A, B, C, D, E, F, G]) sum.Tag {
	return sum.Tag(indexOf[T](&u))
}

// Find returns a pointer to the live T, or nil when T is not live.
func Find[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G]) *T {
	idx := indexOf[T](u)
	if u.live != uint8(idx)+1 {
		return nil
	}

	return u.slot(idx).(*T)
}

// GetUnchecked returns a pointer to the slot of T without looking at the
// tag. Built with the uniondebug tag, a dead T terminates the process.
func GetUnchecked[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G]) *T {
	idx := indexOf[T](u)
	core.CheckLive(u.list(), u.live, idx)

	return u.slot(idx).(*T)
}

// Get returns a pointer to the live T. When T is not live it is
// zero-initialised and made live first, like a map lookup that inserts.
func Get[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G]) *T {
	idx := indexOf[T](u)
	p := u.slot(idx).(*T)

	if u.live != uint8(idx)+1 {
		var zero T
		*p = zero
		u.live = uint8(idx) + 1
	}

	return p
}

// GetValueOrDefault returns the live T, or def when T is not live.
func GetValueOrDefault[T, A, B, C, D, E, F, G any](u Union[A, B, C, D, E, F, G], def T) T {
	if p := Find[T](&u); p != nil {
		return *p
	}

	return def
}

// Set stores v as the live value.
func Set[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G], v T) {
	idx := indexOf[T](u)
	*u.slot(idx).(*T) = v
	u.live = uint8(idx) + 1
}

// SetConverted stores v converted to the alternative T. V must share T's
// underlying type or widen losslessly into it.
func SetConverted[T, V, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G], v V) {
	converted, ok := primitive.Convert[T](v)
	if !ok {
		panic(fmt.Errorf("%w: %s to %s", sum.ErrNotConvertible, reflect.TypeFor[V](), reflect.TypeFor[T]()))
	}

	Set(u, converted)
}

// With returns a copy of u holding v.
func With[T, A, B, C, D, E, F, G any](u Union[A, B, C, D, E, F, G], v T) Union[A, B, C, D, E, F, G] {
	Set(&u, v)
	return u
}

// Match calls fn with the live value when T is live.
func Match[T, A, B, C, D, E, F, G any](u Union[A, B, C, D, E, F, G], fn func(T)) bool {
	if p := Find[T](&u); p != nil {
		fn(*p)
		return true
	}

	return false
}

// MatchRef calls fn with a pointer to the live value when T is live.
func MatchRef[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G], fn func(*T)) bool {
	if p := Find[T](u); p != nil {
		fn(p)
		return true
	}

	return false
}

// MultiMatch calls the first visitor targeting the live alternative.
func MultiMatch[A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G], visitors ...sum.Visitor) bool {
	return core.Dispatch(u.list(), u.live, u.slot, visitors)
}

// Equal reports whether a and b hold the same alternative with equal values.
func Equal[A, B, C, D, E, F, G comparable](a, b Union[A, B, C, D, E, F, G]) bool {
	return a.live == b.live && a.value() == b.value()
}
