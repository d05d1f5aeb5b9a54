package union

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"union-engine/internal/core"
	"union-engine/primitive"
	"union-engine/sum"
)

func indexOf[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G]) int {
	return core.MustIndex(u.table().list, reflect.TypeFor[T]())
}

// Has reports whether T is the live alternative. T must be an alternative
// of u.
func Has[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G]) bool {
	return u.live == uint8(indexOf[T](u))+1
}

// TypeIndexOf returns the tag T has in u, live or not.
func TypeIndexOf[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G]) sum.Tag {
	return sum.Tag(indexOf[T](u))
}

// Find returns a pointer to the live T, or nil when T is not live.
func Find[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G]) *T {
	idx := indexOf[T](u)
	if u.live != uint8(idx)+1 {
		return nil
	}

	return u.slot(idx).(*T)
}

// GetUnchecked returns a pointer to the slot of T without looking at the tag.
// The caller guarantees T is live. Built with the uniondebug tag, a violation
// terminates the process; otherwise the slot holds a zero or stale value.
func GetUnchecked[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G]) *T {
	idx := indexOf[T](u)
	core.CheckLive(u.table().list, u.live, idx)

	return u.slot(idx).(*T)
}

// Set stores v as the live value, taking ownership of it. A live T is
// replaced in place; any other live value is destroyed first.
//
// v must not share resources with a value still owned elsewhere, such as
// *Find[T](u) or the value of another union: both owners would destroy it.
// SetCopy stores a copy instead.
func Set[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G], v T) {
	idx := indexOf[T](u)
	r := &u.table().rows[idx]

	if u.live == uint8(idx)+1 {
		r.moveAssign(u.slot(idx), &v)
		return
	}

	u.Reset()
	r.moveConstruct(u.slot(idx), &v)
	u.live = uint8(idx) + 1
}

// SetCopy stores a copy of v made by its Clone hook, leaving v with its
// current owner. It is safe when v is read from u itself.
func SetCopy[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G], v T) {
	var dup T
	u.table().rows[indexOf[T](u)].copyConstruct(&dup, &v)

	Set(u, dup)
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

// SetDefault destroys the live value and makes a freshly initialised T live.
func SetDefault[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G]) *T {
	idx := indexOf[T](u)

	u.Reset()
	u.table().rows[idx].construct(u.slot(idx))
	u.live = uint8(idx) + 1

	return u.slot(idx).(*T)
}

// With stores v in u and returns u, so a union can be built in one
// expression: union.With(new(union.Of2[int, string]), "abc").
func With[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G], v T) *Union[A, B, C, D, E, F, G] {
	Set(u, v)
	return u
}

// Match calls fn with a copy of the live value when T is live.
func Match[T, A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G], fn func(T)) bool {
	if p := Find[T](u); p != nil {
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
// It reports whether a visitor ran.
func MultiMatch[A, B, C, D, E, F, G any](u *Union[A, B, C, D, E, F, G], visitors ...sum.Visitor) bool {
	return core.Dispatch(u.table().list, u.live, u.slot, visitors)
}

// Equal reports whether a and b hold the same alternative with equal values.
func Equal[A, B, C, D, E, F, G comparable](a, b *Union[A, B, C, D, E, F, G]) bool {
	if a.live != b.live {
		return false
	}

	switch a.live {
	case 1:
		return a.a == b.a
	case 2:
		return a.b == b.b
	case 3:
		return a.c == b.c
	case 4:
		return a.d == b.d
	case 5:
		return a.e == b.e
	case 6:
		return a.f == b.f
	case 7:
		return a.g == b.g
	}

	return true
}

// MarshalYAML encodes u as {tag, value}, or null when empty.
func (u *Union[A, B, C, D, E, F, G]) MarshalYAML() (any, error) {
	if u.live == 0 {
		return nil, nil
	}

	idx := int(u.live) - 1

	return core.Wire{Tag: idx, Value: u.table().rows[idx].value(u.slot(idx))}, nil
}

// UnmarshalYAML decodes the {tag, value} form written by MarshalYAML.
// On error u keeps its previous value.
func (u *Union[A, B, C, D, E, F, G]) UnmarshalYAML(node *yaml.Node) error {
	if core.IsNull(node) {
		u.Reset()
		return nil
	}

	t := u.table()

	idx, value, err := core.DecodeWire(node, t.list)
	if err != nil {
		return err
	}

	var decoded Union[A, B, C, D, E, F, G]
	if err := t.rows[idx].decode(decoded.slot(idx), value); err != nil {
		return fmt.Errorf("failed to decode %s alternative: %w", t.list.At(idx), err)
	}
	decoded.live = uint8(idx) + 1

	u.MoveFrom(&decoded)

	return nil
}
