package check

import (
	"fmt"
	"go/types"
)

// isTrivial mirrors typelist.IsTrivial on go/types: booleans, numbers,
// strings, and arrays or structs of those, none declaring lifecycle hooks.
// The reason names the first offending part.
func isTrivial(t types.Type) (bool, string) {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		if u.Kind() == types.UnsafePointer || u.Kind() == types.Invalid {
			return false, fmt.Sprintf("%s is not a plain value", t)
		}

	case *types.Array:
		if ok, why := isTrivial(u.Elem()); !ok {
			return false, why
		}

	case *types.Struct:
		for i := range u.NumFields() {
			if ok, why := isTrivial(u.Field(i).Type()); !ok {
				return false, fmt.Sprintf("field %s: %s", u.Field(i).Name(), why)
			}
		}

	default:
		return false, fmt.Sprintf("%s is a %s", t, kindName(u))
	}

	if hook := lifecycleHook(t); hook != "" {
		return false, fmt.Sprintf("%s declares %s", t, hook)
	}

	return true, ""
}

func kindName(t types.Type) string {
	switch t.(type) {
	case *types.Pointer:
		return "pointer"
	case *types.Slice:
		return "slice"
	case *types.Map:
		return "map"
	case *types.Chan:
		return "channel"
	case *types.Signature:
		return "func"
	case *types.Interface:
		return "interface"
	default:
		return "non-value type"
	}
}

// lifecycleHook returns the first hook of T or *T a managed union would
// call: Init(), Destroy(), Clone() T or Assign(T).
func lifecycleHook(t types.Type) string {
	ms := types.NewMethodSet(types.NewPointer(t))

	for _, name := range []string{"Init", "Destroy", "Clone", "Assign"} {
		sel := ms.Lookup(nil, name)
		if sel == nil {
			continue
		}

		sig, ok := sel.Type().(*types.Signature)
		if !ok {
			continue
		}

		params, results := sig.Params(), sig.Results()

		switch name {
		case "Init", "Destroy":
			if params.Len() == 0 && results.Len() == 0 {
				return name + "()"
			}
		case "Clone":
			if params.Len() == 0 && results.Len() == 1 && types.Identical(results.At(0).Type(), t) {
				return "Clone()"
			}
		case "Assign":
			if params.Len() == 1 && results.Len() == 0 && types.Identical(params.At(0).Type(), t) {
				return "Assign()"
			}
		}
	}

	return ""
}
