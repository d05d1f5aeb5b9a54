package typelist

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=StrategyEnum -output=strategy_string.go

// StrategyEnum names how a union stores and copies its alternatives.
type StrategyEnum int

const (
	_ StrategyEnum = iota // zero value stands for an invalid list

	StrategyTrivial // every alternative is copied with plain assignment
	StrategyManaged // alternatives go through a per-type method table

	// StrategyTotal is a constant that represents the total number of strategies defined
	StrategyTotal = int(iota)
)

// ParseStrategy accepts "trivial" or "managed" in any case.
func ParseStrategy(name string) (StrategyEnum, error) {
	for s := StrategyTrivial; s < StrategyEnum(StrategyTotal); s++ {
		if strings.EqualFold(name, s.Name()) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("unknown strategy %q", name)
}

// Name returns the short lower-case name used in configuration files.
func (s StrategyEnum) Name() string {
	return strings.ToLower(strings.TrimPrefix(s.String(), "Strategy"))
}
