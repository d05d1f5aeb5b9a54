// Package union implements the managed strategy: a tagged union whose
// alternatives may need explicit construction, copy, move and destruction.
//
// Every lifecycle step goes through a per-alternative method table that is
// built once per instantiation and selected by the live tag. Types opt into
// custom behaviour through the hooks declared in package sum.
//
// A Union must not be copied by assignment once used; copy and move are the
// explicit methods Clone, Take, CopyFrom and MoveFrom. Copies without a Clone
// hook are shallow: an alternative holding a slice, map or pointer shares its
// backing data with the copy until it declares Clone() T. Go has no destructors,
// so the owner of a union calls Reset when the value is no longer needed.
package union

import (
	"fmt"
	"reflect"

	"union-engine/internal/core"
	"union-engine/sum"
	"union-engine/typelist"
)

// Void fills unused alternative slots.
type Void = typelist.Void

// Union holds at most one value of the alternatives A to G. Trailing slots
// set to Void are unused. The zero value is empty.
type Union[A, B, C, D, E, F, G any] struct {
	_    noCopy
	live uint8 // 0 when empty, index+1 otherwise

	a A
	b B
	c C
	d D
	e E
	f F
	g G
}

type (
	Opt[T any]                = Union[T, Void, Void, Void, Void, Void, Void]
	Of2[A, B any]             = Union[A, B, Void, Void, Void, Void, Void]
	Of3[A, B, C any]          = Union[A, B, C, Void, Void, Void, Void]
	Of4[A, B, C, D any]       = Union[A, B, C, D, Void, Void, Void]
	Of5[A, B, C, D, E any]    = Union[A, B, C, D, E, Void, Void]
	Of6[A, B, C, D, E, F any] = Union[A, B, C, D, E, F, Void]
)

// noCopy makes go vet report accidental copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func (u *Union[A, B, C, D, E, F, G]) table() *table {
	return core.Load(reflect.TypeFor[Union[A, B, C, D, E, F, G]](), buildTable[A, B, C, D, E, F, G])
}

// slot returns a pointer to the storage of alternative idx.
func (u *Union[A, B, C, D, E, F, G]) slot(idx int) any {
	switch idx {
	case 0:
		return &u.a
	case 1:
		return &u.b
	case 2:
		return &u.c
	case 3:
		return &u.d
	case 4:
		return &u.e
	case 5:
		return &u.f
	case 6:
		return &u.g
	}

	panic(fmt.Sprintf("union: slot index %d out of range", idx))
}

// HasAnyValue reports whether an alternative is live. It stands in for a
// boolean conversion.
func (u *Union[A, B, C, D, E, F, G]) HasAnyValue() bool {
	return u.live != 0
}

// TypeIndex returns the index of the live alternative, or sum.Empty.
func (u *Union[A, B, C, D, E, F, G]) TypeIndex() sum.Tag {
	return core.TagOf(u.live)
}

// Alternatives returns the validated alternative list.
func (u *Union[A, B, C, D, E, F, G]) Alternatives() typelist.List {
	return u.table().list
}

// IsTrivial reports whether every alternative is trivial, in which case the
// method table holds plain assignments only.
func (u *Union[A, B, C, D, E, F, G]) IsTrivial() bool {
	return u.table().list.AllTrivial()
}

// Reset destroys the live value, if any, and leaves the union empty.
func (u *Union[A, B, C, D, E, F, G]) Reset() {
	if u.live == 0 {
		return
	}

	idx := int(u.live) - 1
	u.table().rows[idx].destroy(u.slot(idx))
	u.live = 0
}

// Clone returns a new union holding a copy of the live value.
func (u *Union[A, B, C, D, E, F, G]) Clone() *Union[A, B, C, D, E, F, G] {
	out := new(Union[A, B, C, D, E, F, G])
	if u.live == 0 {
		return out
	}

	idx := int(u.live) - 1
	u.table().rows[idx].copyConstruct(out.slot(idx), u.slot(idx))
	out.live = u.live

	return out
}

// Take returns a new union holding the live value and leaves u empty.
// The value is transferred, not copied: no hook runs.
func (u *Union[A, B, C, D, E, F, G]) Take() *Union[A, B, C, D, E, F, G] {
	out := new(Union[A, B, C, D, E, F, G])
	if u.live == 0 {
		return out
	}

	idx := int(u.live) - 1
	u.table().rows[idx].moveConstruct(out.slot(idx), u.slot(idx))
	out.live, u.live = u.live, 0

	return out
}

// CopyFrom makes u hold a copy of the value live in other. The same live
// alternative is assigned in place; a different one replaces the old value.
func (u *Union[A, B, C, D, E, F, G]) CopyFrom(other *Union[A, B, C, D, E, F, G]) {
	if u == other {
		return
	}

	if other.live == 0 {
		u.Reset()
		return
	}

	idx := int(other.live) - 1
	r := &u.table().rows[idx]

	if u.live == other.live {
		r.copyAssign(u.slot(idx), other.slot(idx))
		return
	}

	u.Reset()
	r.copyConstruct(u.slot(idx), other.slot(idx))
	u.live = other.live
}

// MoveFrom transfers the value live in other into u. other is always left
// empty, whichever alternative u held before.
func (u *Union[A, B, C, D, E, F, G]) MoveFrom(other *Union[A, B, C, D, E, F, G]) {
	if u == other {
		return
	}

	if other.live == 0 {
		u.Reset()
		return
	}

	idx := int(other.live) - 1
	r := &u.table().rows[idx]

	if u.live == other.live {
		r.moveAssign(u.slot(idx), other.slot(idx))
		other.live = 0
		return
	}

	u.Reset()
	r.moveConstruct(u.slot(idx), other.slot(idx))
	u.live, other.live = other.live, 0
}

// String formats the live value with %v, or "<empty>".
func (u *Union[A, B, C, D, E, F, G]) String() string {
	if u.live == 0 {
		return "<empty>"
	}

	idx := int(u.live) - 1

	return fmt.Sprint(u.table().rows[idx].value(u.slot(idx)))
}
