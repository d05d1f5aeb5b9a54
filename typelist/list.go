// Package typelist resolves facts about an ordered list of alternative types:
// the index of a type within the list, whether every member is trivial and the
// storage layout needed to hold the largest member.
//
// A List is validated once and never changes afterwards, so it can be shared
// between goroutines without locking.
package typelist

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// MaxAlternatives is the largest number of alternatives a list may hold.
const MaxAlternatives = 7

// NotFound is returned by IndexOf when the type is not in the list.
// It shares its value with the empty tag of a union.
const NotFound = 0xff

var (
	ErrEmpty     = errors.New("alternative list is empty")
	ErrTooMany   = errors.New("too many types in alternative list")
	ErrDuplicate = errors.New("alternative list contains duplicate type")
	ErrNilType   = errors.New("alternative list contains nil type")
	ErrGap       = errors.New("void placeholder is followed by a real alternative")
)

// Void fills the unused type parameter slots of a union. It is never an
// alternative: trailing Void slots are dropped from the list.
type Void struct{}

var voidType = reflect.TypeFor[Void]()

// IsVoid reports whether t is the Void placeholder.
func IsVoid(t reflect.Type) bool {
	return t == voidType
}

// List is an ordered list of distinct alternative types.
type List struct {
	types   []reflect.Type
	layout  Layout
	trivial bool
}

// New validates types and returns the list they form.
func New(types ...reflect.Type) (List, error) {
	switch {
	case len(types) == 0:
		return List{}, ErrEmpty
	case len(types) > MaxAlternatives:
		return List{}, fmt.Errorf("%w: %d > %d", ErrTooMany, len(types), MaxAlternatives)
	}

	for i, t := range types {
		if t == nil {
			return List{}, fmt.Errorf("%w: position %d", ErrNilType, i)
		}

		if IsVoid(t) {
			return List{}, fmt.Errorf("%w: position %d", ErrGap, i)
		}

		for j := range i {
			if types[j] == t {
				return List{}, fmt.Errorf("%w: %s at positions %d and %d", ErrDuplicate, t, j, i)
			}
		}
	}

	list := List{
		types:   append([]reflect.Type(nil), types...),
		layout:  LayoutOf(types...),
		trivial: true,
	}

	for _, t := range types {
		if !IsTrivial(t) {
			list.trivial = false
			break
		}
	}

	return list, nil
}

// For builds the list named by the type parameters of a seven slot union.
// Trailing Void parameters are dropped, a Void between real alternatives is
// rejected with ErrGap.
func For[A, B, C, D, E, F, G any]() (List, error) {
	all := [MaxAlternatives]reflect.Type{
		reflect.TypeFor[A](),
		reflect.TypeFor[B](),
		reflect.TypeFor[C](),
		reflect.TypeFor[D](),
		reflect.TypeFor[E](),
		reflect.TypeFor[F](),
		reflect.TypeFor[G](),
	}

	n := len(all)
	for n > 0 && IsVoid(all[n-1]) {
		n--
	}

	return New(all[:n]...)
}

// Len returns the number of alternatives.
func (l List) Len() int {
	return len(l.types)
}

// At returns the alternative at position i.
func (l List) At(i int) reflect.Type {
	return l.types[i]
}

// Types returns a copy of the alternatives in order.
func (l List) Types() []reflect.Type {
	return append([]reflect.Type(nil), l.types...)
}

// IndexOf returns the position of the first alternative identical to t,
// or NotFound.
func (l List) IndexOf(t reflect.Type) int {
	for i, alt := range l.types {
		if alt == t {
			return i
		}
	}

	return NotFound
}

// Contains reports whether t is one of the alternatives.
func (l List) Contains(t reflect.Type) bool {
	return l.IndexOf(t) != NotFound
}

// AllTrivial reports whether every alternative is trivial.
func (l List) AllTrivial() bool {
	return l.trivial
}

// Strategy returns the storage strategy the list calls for.
func (l List) Strategy() StrategyEnum {
	if len(l.types) == 0 {
		return 0
	}

	if l.trivial {
		return StrategyTrivial
	}

	return StrategyManaged
}

// Layout returns the size and alignment needed by the largest alternative.
func (l List) Layout() Layout {
	return l.layout
}

// String formats the list as "{int, string}".
func (l List) String() string {
	names := make([]string, len(l.types))
	for i, t := range l.types {
		names[i] = t.String()
	}

	return "{" + strings.Join(names, ", ") + "}"
}

// IndexOf returns the position of T within l, or NotFound.
func IndexOf[T any](l List) int {
	return l.IndexOf(reflect.TypeFor[T]())
}
