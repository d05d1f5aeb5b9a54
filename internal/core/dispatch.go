package core

import (
	"fmt"
	"reflect"

	"union-engine/sum"
	"union-engine/typelist"
)

// TagOf converts the stored discriminant (0 for empty, index+1 otherwise)
// into the public tag.
func TagOf(live uint8) sum.Tag {
	if live == 0 {
		return sum.Empty
	}

	return sum.Tag(live - 1)
}

// MustList panics when building the alternative list of owner failed.
func MustList(list typelist.List, err error, owner reflect.Type) typelist.List {
	if err != nil {
		panic(fmt.Errorf("%w %s: %w", sum.ErrInvalidAlternatives, owner, err))
	}

	return list
}

// MustIndex returns the position of t in list and panics when t is not an
// alternative. Asking for a foreign type is a programming error.
func MustIndex(list typelist.List, t reflect.Type) int {
	idx := list.IndexOf(t)
	if idx == typelist.NotFound {
		panic(fmt.Errorf("%w: %s is not in %s", sum.ErrNotAlternative, t, list))
	}

	return idx
}

// Dispatch tries visitors in order and calls the first whose target is live.
// ptrAt returns a pointer to the slot at an index. Every visitor must target
// an alternative, whichever one is live.
func Dispatch(list typelist.List, live uint8, ptrAt func(idx int) any, visitors []sum.Visitor) bool {
	match := -1
	for i, v := range visitors {
		idx := MustIndex(list, v.Target())
		if match < 0 && live == uint8(idx)+1 {
			match = i
		}
	}

	if match < 0 {
		return false
	}

	visitors[match].Visit(ptrAt(int(live) - 1))

	return true
}

// LiveName names the live alternative for messages.
func LiveName(list typelist.List, live uint8) string {
	if live == 0 {
		return "empty"
	}

	return list.At(int(live) - 1).String()
}

// CheckLive enforces the GetUnchecked contract in checked builds: the
// alternative at idx must be live. In release builds it compiles to nothing.
func CheckLive(list typelist.List, live uint8, idx int) {
	if Checked {
		Require(live == uint8(idx)+1, "unchecked access to %s while %s is live in %s",
			list.At(idx), LiveName(list, live), list)
	}
}
