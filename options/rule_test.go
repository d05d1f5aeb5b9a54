package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleEnum_String(t *testing.T) {
	assert.Equal(t, "all", RuleAll.String())
	assert.Equal(t, "none", RuleNone.String())
	assert.Equal(t, "membership|gap", (RuleMembership | RuleGap).String())
}

func TestRuleEnum_Has(t *testing.T) {
	rules := RuleMembership | RuleTrivial

	assert.True(t, rules.Has(RuleMembership))
	assert.True(t, rules.Has(RuleTrivial))
	assert.False(t, rules.Has(RuleGap))
	assert.False(t, rules.Has(RuleMembership|RuleGap))
	assert.True(t, RuleAll.Has(RuleStrategy))
}

func TestParseRules(t *testing.T) {
	rules, err := ParseRules("Membership", " gap ")
	require.NoError(t, err)
	assert.Equal(t, RuleMembership|RuleGap, rules)

	rules, err = ParseRules("all")
	require.NoError(t, err)
	assert.Equal(t, RuleAll, rules)
	assert.Len(t, rules.Names(), 5)

	_, err = ParseRules("gap", "typo")
	assert.EqualError(t, err, `unknown rule "typo"`)
}

func TestParseRules_Empty(t *testing.T) {
	rules, err := ParseRules()
	require.NoError(t, err)
	assert.Equal(t, RuleNone, rules)
	assert.Equal(t, RuleAll, RuleAll&^rules)
}
