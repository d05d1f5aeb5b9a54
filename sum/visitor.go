package sum

import (
	"fmt"
	"reflect"
)

// Visitor is a single-argument callable bound to one alternative type.
// Visit receives a pointer to the live value; it is only called when the live
// alternative's type equals Target.
type Visitor interface {
	Target() reflect.Type
	Visit(ptr any)
}

type valueVisitor[T any] func(T)

func (valueVisitor[T]) Target() reflect.Type { return reflect.TypeFor[T]() }
func (fn valueVisitor[T]) Visit(ptr any)     { fn(*ptr.(*T)) }

type refVisitor[T any] func(*T)

func (refVisitor[T]) Target() reflect.Type { return reflect.TypeFor[T]() }
func (fn refVisitor[T]) Visit(ptr any)     { fn(ptr.(*T)) }

// On returns a visitor receiving a copy of a live T.
func On[T any](fn func(T)) Visitor {
	return valueVisitor[T](fn)
}

// OnRef returns a visitor receiving a pointer to a live T, so it can modify
// the value in place.
func OnRef[T any](fn func(*T)) Visitor {
	return refVisitor[T](fn)
}

type funcVisitor struct {
	target reflect.Type
	fn     reflect.Value
}

func (v funcVisitor) Target() reflect.Type { return v.target }

func (v funcVisitor) Visit(ptr any) {
	v.fn.Call([]reflect.Value{reflect.ValueOf(ptr).Elem()})
}

// ParseVisitor inspects fn and returns a visitor targeting the type of its
// only argument.
//
// Supports interfaces:
//   - func(v Type)
func ParseVisitor(fn any) (Visitor, error) {
	if v, ok := fn.(Visitor); ok {
		return v, nil
	}

	if fn == nil {
		return nil, ErrVisitorIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return nil, ErrVisitorIsNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.NumOut() != 0 || fnType.IsVariadic() || fnVal.IsNil() {
		return nil, ErrNotAVisitor
	}

	return funcVisitor{target: fnType.In(0), fn: fnVal}, nil
}

// Funcs turns plain functions into visitors. Values that already implement
// Visitor are passed through.
func Funcs(fns ...any) ([]Visitor, error) {
	visitors := make([]Visitor, 0, len(fns))

	for i, fn := range fns {
		v, err := ParseVisitor(fn)
		if err != nil {
			return nil, fmt.Errorf("visitor %d (%T): %w", i, fn, err)
		}

		visitors = append(visitors, v)
	}

	return visitors, nil
}
