// Package pod implements the trivial strategy: a tagged union whose
// alternatives are all trivial, so the union itself is an ordinary value
// copied, moved and dropped by plain assignment.
//
// The alternative list is validated on first use. A non-trivial alternative
// panics with sum.ErrNotTrivial; use package union for those.
package pod

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"union-engine/internal/core"
	"union-engine/sum"
	"union-engine/typelist"
)

// Void fills unused alternative slots.
type Void = typelist.Void

// Union holds at most one value of the trivial alternatives A to G.
// The zero value is empty.
type Union[A, B, C, D, E, F, G any] struct {
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

func (u Union[A, B, C, D, E, F, G]) list() typelist.List {
	return core.Load(reflect.TypeFor[Union[A, B, C, D, E, F, G]](), validate[A, B, C, D, E, F, G])
}

func validate[A, B, C, D, E, F, G any]() typelist.List {
	owner := reflect.TypeFor[Union[A, B, C, D, E, F, G]]()

	list, err := typelist.For[A, B, C, D, E, F, G]()
	list = core.MustList(list, err, owner)

	for _, t := range list.Types() {
		if !typelist.IsTrivial(t) {
			panic(fmt.Errorf("%w: %s in %s", sum.ErrNotTrivial, t, owner))
		}
	}

	return list
}

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

	panic(fmt.Sprintf("pod: slot index %d out of range", idx))
}

func (u Union[A, B, C, D, E, F, G]) value() any {
	switch u.live {
	case 1:
		return u.a
	case 2:
		return u.b
	case 3:
		return u.c
	case 4:
		return u.d
	case 5:
		return u.e
	case 6:
		return u.f
	case 7:
		return u.g
	}

	return nil
}

// HasAnyValue reports whether an alternative is live.
func (u Union[A, B, C, D, E, F, G]) HasAnyValue() bool {
	return u.live != 0
}

// TypeIndex returns the index of the live alternative, or sum.Empty.
func (u Union[A, B, C, D, E, F, G]) TypeIndex() sum.Tag {
	return core.TagOf(u.live)
}

// Alternatives returns the validated alternative list.
func (u Union[A, B, C, D, E, F, G]) Alternatives() typelist.List {
	return u.list()
}

// Reset marks u empty. The slot keeps its bytes; they are meaningless until
// an alternative is set again.
func (u *Union[A, B, C, D, E, F, G]) Reset() {
	u.live = 0
}

func (u Union[A, B, C, D, E, F, G]) String() string {
	if u.live == 0 {
		return "<empty>"
	}

	return fmt.Sprint(u.value())
}

// MarshalYAML encodes u as {tag, value}, or null when empty.
func (u Union[A, B, C, D, E, F, G]) MarshalYAML() (any, error) {
	if u.live == 0 {
		return nil, nil
	}

	return core.Wire{Tag: int(u.live) - 1, Value: u.value()}, nil
}

// UnmarshalYAML decodes the {tag, value} form written by MarshalYAML.
// On error u keeps its previous value.
func (u *Union[A, B, C, D, E, F, G]) UnmarshalYAML(node *yaml.Node) error {
	if core.IsNull(node) {
		u.Reset()
		return nil
	}

	list := u.list()

	idx, value, err := core.DecodeWire(node, list)
	if err != nil {
		return err
	}

	var decoded Union[A, B, C, D, E, F, G]
	if err := value.Decode(decoded.slot(idx)); err != nil {
		return fmt.Errorf("failed to decode %s alternative: %w", list.At(idx), err)
	}
	decoded.live = uint8(idx) + 1

	*u = decoded

	return nil
}
