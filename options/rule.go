package options

import (
	"fmt"
	"strings"
)

type RuleEnum int

const (
	RuleMembership RuleEnum = 1 << iota // type argument of Has/Find/Set/... must be an alternative of the union
	RuleDuplicate                       // alternatives of one union must be distinct
	RuleGap                             // Void placeholders may only fill trailing slots
	RuleTrivial                         // every alternative of a pod union must be trivial
	RuleStrategy                        // managed union whose alternatives are all trivial could be a pod union

	RuleAll  RuleEnum = (1 << iota) - 1 // all rules combined
	RuleNone RuleEnum = 0               // no rules selected
)

var ruleNames = []struct {
	rule RuleEnum
	name string
}{
	{RuleMembership, "membership"},
	{RuleDuplicate, "duplicate"},
	{RuleGap, "gap"},
	{RuleTrivial, "trivial"},
	{RuleStrategy, "strategy"},
}

// Has reports whether every rule of other is enabled in r.
func (r RuleEnum) Has(other RuleEnum) bool {
	return r&other == other
}

// Names returns the names of the enabled rules in declaration order.
func (r RuleEnum) Names() []string {
	var names []string
	for _, rn := range ruleNames {
		if r.Has(rn.rule) {
			names = append(names, rn.name)
		}
	}

	return names
}

func (r RuleEnum) String() string {
	switch r {
	case RuleNone:
		return "none"
	case RuleAll:
		return "all"
	}

	return strings.Join(r.Names(), "|")
}

// ParseRule parses a single rule name, "all" or "none". Names are case
// insensitive.
func ParseRule(name string) (RuleEnum, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "all":
		return RuleAll, nil
	case "none":
		return RuleNone, nil
	}

	for _, rn := range ruleNames {
		if rn.name == name {
			return rn.rule, nil
		}
	}

	return RuleNone, fmt.Errorf("unknown rule %q", name)
}

// ParseRules combines rule names into one set.
func ParseRules(names ...string) (RuleEnum, error) {
	rules := RuleNone
	for _, name := range names {
		r, err := ParseRule(name)
		if err != nil {
			return RuleNone, err
		}

		rules |= r
	}

	return rules, nil
}
