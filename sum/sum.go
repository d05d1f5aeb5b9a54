// Package sum holds the vocabulary shared by the union implementations:
// the active tag, lifecycle hooks, visitors and the errors reported on misuse.
//
// Two containers build on it:
//   - union.Union, the managed strategy, for alternatives that need explicit
//     construction, copy, move and destruction;
//   - pod.Union, the trivial strategy, for alternatives that are copied with
//     plain assignment.
package sum

import (
	"errors"

	"union-engine/typelist"
)

// Tag is the index of the live alternative, or Empty.
type Tag uint8

// Empty is the tag of a union holding no value.
const Empty Tag = typelist.NotFound

// Valid reports whether t names an alternative rather than Empty.
func (t Tag) Valid() bool {
	return t != Empty
}

var (
	ErrNotAlternative        = errors.New("type is not an alternative of the union")
	ErrNotTrivial            = errors.New("alternative is not trivially copyable")
	ErrNotConvertible        = errors.New("value is not convertible to the alternative")
	ErrInvalidAlternatives   = errors.New("invalid alternative list")
	ErrUnknownTag            = errors.New("tag does not name an alternative")
	ErrVisitorIsNotAFunction = errors.New("provided visitor is not a function")
	ErrNotAVisitor           = errors.New("provided function is not a recognizable visitor")
)

// Initializer is called after a managed union zero-initialises an alternative
// in place (SetDefault).
type Initializer interface {
	Init()
}

// Cloner produces an independent copy. A managed union calls it whenever it
// copy-constructs the alternative.
type Cloner[T any] interface {
	Clone() T
}

// Assigner copies src into an already live value. A managed union calls it
// for copy-assignment between two unions holding the same alternative; without
// it the old value is destroyed and src is cloned in its place.
type Assigner[T any] interface {
	Assign(src T)
}

// Destroyer releases whatever the value owns. A managed union calls it exactly
// once per constructed value, when the value is reset or replaced by another
// alternative. Moved-from values are not destroyed: ownership moved with them.
type Destroyer interface {
	Destroy()
}
