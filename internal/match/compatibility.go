package match

import (
	"go/types"

	"union-engine/internal/common"
	"union-engine/primitive"
)

// TypeCompatibility represents how close a requested type is to an
// alternative.
type TypeCompatibility int

const (
	// TypeIncompatible means values of the requested type cannot be stored.
	TypeIncompatible TypeCompatibility = iota
	// TypeNeedsPointerChange means the requested type differs by one pointer
	// level from the alternative.
	TypeNeedsPointerChange
	// TypeConvertible means the value can be stored after a Go conversion
	// (SetConverted).
	TypeConvertible
	// TypeAssignable means the requested type is assignable to the alternative.
	TypeAssignable
	// TypeIdentical means the types are exactly the same.
	TypeIdentical
)

const (
	VerdictIdentical          = "identical"
	VerdictAssignable         = "assignable"
	VerdictConvertible        = "convertible"
	VerdictNeedsPointerChange = "needs_pointer_change"
	VerdictIncompatible       = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c TypeCompatibility) String() string {
	switch c {
	case TypeIdentical:
		return VerdictIdentical
	case TypeAssignable:
		return VerdictAssignable
	case TypeConvertible:
		return VerdictConvertible
	case TypeNeedsPointerChange:
		return VerdictNeedsPointerChange
	case TypeIncompatible:
		return VerdictIncompatible
	default:
		return common.UnknownStr
	}
}

// TypeCompatibilityResult contains detailed information about type compatibility.
type TypeCompatibilityResult struct {
	Compatibility TypeCompatibility
	Reason        string // Human-readable explanation
}

// ScoreTypeCompatibility determines the compatibility between a requested
// type and an alternative.
func ScoreTypeCompatibility(requested, alternative types.Type) TypeCompatibilityResult {
	switch {
	case types.Identical(requested, alternative):
		return TypeCompatibilityResult{TypeIdentical, "types are identical"}

	case types.AssignableTo(requested, alternative):
		return TypeCompatibilityResult{TypeAssignable, "value is assignable to the alternative"}

	case types.ConvertibleTo(requested, alternative) && convertsLosslessly(requested, alternative):
		return TypeCompatibilityResult{TypeConvertible, "value converts to the alternative"}
	}

	if ptr, ok := requested.(*types.Pointer); ok && types.Identical(ptr.Elem(), alternative) {
		return TypeCompatibilityResult{TypeNeedsPointerChange, "requires pointer dereference"}
	}

	if ptr, ok := alternative.(*types.Pointer); ok && types.Identical(requested, ptr.Elem()) {
		return TypeCompatibilityResult{TypeNeedsPointerChange, "requires taking address"}
	}

	return TypeCompatibilityResult{TypeIncompatible, "types are not compatible"}
}

// convertsLosslessly mirrors primitive.CanConvert: the same underlying type,
// or a numeric widening that keeps every value.
func convertsLosslessly(from, to types.Type) bool {
	fu, tu := from.Underlying(), to.Underlying()
	if types.IdenticalIgnoreTags(fu, tu) {
		return true
	}

	fb, ok := fu.(*types.Basic)
	if !ok {
		return false
	}

	tb, ok := tu.(*types.Basic)
	if !ok {
		return false
	}

	fk, tk := primitive.FromBasicKind(fb.Kind()), primitive.FromBasicKind(tb.Kind())

	return fk.IsNumber() && tk.IsNumber() && primitive.IsSafe(fk, tk)
}
