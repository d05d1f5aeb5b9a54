package typelist

import "reflect"

// IsTrivial reports whether values of t can be copied, moved and dropped with
// plain assignment: booleans, numbers, strings, and arrays or structs built
// only from those, none of which declare lifecycle hooks.
//
// Pointers, slices, maps, channels, functions and interfaces share state when
// copied, so they are never trivial.
func IsTrivial(t reflect.Type) bool {
	if t == nil || !hasTrivialKind(t) {
		return false
	}

	return !HasLifecycleHooks(t)
}

func hasTrivialKind(t reflect.Type) bool {
	switch t.Kind() {
	default:
		return false

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true

	case reflect.Array:
		return IsTrivial(t.Elem())

	case reflect.Struct:
		for i := range t.NumField() {
			if !IsTrivial(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
}

// HasLifecycleHooks reports whether T or *T declares any of the hooks a
// managed union calls: Init(), Clone() T, Assign(T) or Destroy().
func HasLifecycleHooks(t reflect.Type) bool {
	if t == nil || t.Kind() == reflect.Interface {
		return false
	}

	for _, rt := range []reflect.Type{t, reflect.PointerTo(t)} {
		if hasNullary(rt, "Init") || hasNullary(rt, "Destroy") {
			return true
		}

		if m, ok := rt.MethodByName("Clone"); ok {
			if m.Type.NumIn() == 1 && m.Type.NumOut() == 1 && m.Type.Out(0) == t {
				return true
			}
		}

		if m, ok := rt.MethodByName("Assign"); ok {
			if m.Type.NumIn() == 2 && m.Type.In(1) == t && m.Type.NumOut() == 0 {
				return true
			}
		}
	}

	return false
}

// hasNullary matches func(recv) with no results. Method types obtained from a
// concrete type include the receiver as the first input.
func hasNullary(rt reflect.Type, name string) bool {
	m, ok := rt.MethodByName(name)
	if !ok {
		return false
	}

	return m.Type.NumIn() == 1 && m.Type.NumOut() == 0
}
