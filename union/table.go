package union

import (
	"reflect"

	"gopkg.in/yaml.v3"

	"union-engine/internal/core"
	"union-engine/sum"
	"union-engine/typelist"
)

// row holds the lifecycle operations of one alternative. Pointer arguments
// point at a slot of the row's type.
type row struct {
	copyConstruct func(dst, src any)
	copyAssign    func(dst, src any)
	moveConstruct func(dst, src any)
	moveAssign    func(dst, src any)
	destroy       func(p any)

	construct func(p any)
	value     func(p any) any
	decode    func(p any, node *yaml.Node) error
}

type table struct {
	list typelist.List
	rows []row
}

func buildTable[A, B, C, D, E, F, G any]() *table {
	list, err := typelist.For[A, B, C, D, E, F, G]()
	list = core.MustList(list, err, reflect.TypeFor[Union[A, B, C, D, E, F, G]]())

	rows := [typelist.MaxAlternatives]row{
		rowFor[A](),
		rowFor[B](),
		rowFor[C](),
		rowFor[D](),
		rowFor[E](),
		rowFor[F](),
		rowFor[G](),
	}

	return &table{list: list, rows: rows[:list.Len()]}
}

func rowFor[T any]() row {
	r := row{
		construct: construct[T],
		value:     func(p any) any { return *p.(*T) },
		decode:    func(p any, node *yaml.Node) error { return node.Decode(p.(*T)) },
	}

	if typelist.IsTrivial(reflect.TypeFor[T]()) {
		r.copyConstruct = assign[T]
		r.copyAssign = assign[T]
		r.moveConstruct = assign[T]
		r.moveAssign = assign[T]
		r.destroy = func(any) {}

		return r
	}

	r.copyConstruct = copyConstruct[T]
	r.copyAssign = copyAssign[T]
	r.moveConstruct = moveConstruct[T]
	r.moveAssign = moveAssign[T]
	r.destroy = destroy[T]

	return r
}

func assign[T any](dst, src any) {
	*dst.(*T) = *src.(*T)
}

func construct[T any](p any) {
	ptr := p.(*T)

	var zero T
	*ptr = zero

	if h, ok := any(ptr).(sum.Initializer); ok {
		h.Init()
	}
}

func copyConstruct[T any](dst, src any) {
	d, s := dst.(*T), src.(*T)

	if h, ok := any(s).(sum.Cloner[T]); ok {
		*d = h.Clone()
		return
	}

	*d = *s
}

func copyAssign[T any](dst, src any) {
	if h, ok := any(dst.(*T)).(sum.Assigner[T]); ok {
		h.Assign(*src.(*T))
		return
	}

	destroy[T](dst)
	copyConstruct[T](dst, src)
}

// moveConstruct transfers ownership: the source slot is zeroed without
// running Destroy.
func moveConstruct[T any](dst, src any) {
	d, s := dst.(*T), src.(*T)

	var zero T
	*d, *s = *s, zero
}

func moveAssign[T any](dst, src any) {
	destroy[T](dst)
	moveConstruct[T](dst, src)
}

func destroy[T any](p any) {
	ptr := p.(*T)

	if h, ok := any(ptr).(sum.Destroyer); ok {
		h.Destroy()
	}

	var zero T
	*ptr = zero
}
