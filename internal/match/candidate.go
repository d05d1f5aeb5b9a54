package match

import (
	"fmt"
	"go/types"
	"sort"
)

// Candidate is an alternative scored against a requested type.
type Candidate struct {
	Index int    // position in the alternative list
	Name  string // alternative type as written with the qualifier

	NameScore  float64
	TypeCompat TypeCompatibilityResult

	// Combined score for ranking (higher is better)
	CombinedScore float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankAlternatives scores every alternative against requested and returns
// them best first. qualifier controls how package names are printed and may
// be nil.
func RankAlternatives(requested types.Type, alternatives []types.Type, qualifier types.Qualifier) CandidateList {
	requestedName := types.TypeString(requested, qualifier)

	candidates := make(CandidateList, 0, len(alternatives))
	for i, alt := range alternatives {
		name := types.TypeString(alt, qualifier)
		nameScore := NormalizedLevenshteinScore(requestedName, name)
		compat := ScoreTypeCompatibility(requested, alt)

		candidates = append(candidates, Candidate{
			Index:         i,
			Name:          name,
			NameScore:     nameScore,
			TypeCompat:    compat,
			CombinedScore: calculateCombinedScore(nameScore, compat.Compatibility),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// calculateCombinedScore computes a combined score from name similarity and type compatibility.
// Weights:
//   - Name similarity: 40% (0.0-0.4)
//   - Type compatibility: 60% (0.0-0.6)
func calculateCombinedScore(nameScore float64, typeCompat TypeCompatibility) float64 {
	const (
		nameWeight = 0.4
		typeWeight = 0.6
	)

	var typeScore float64
	switch typeCompat {
	case TypeIdentical:
		typeScore = 1.0
	case TypeAssignable:
		typeScore = 0.9
	case TypeConvertible:
		typeScore = 0.7
	case TypeNeedsPointerChange:
		typeScore = 0.5
	case TypeIncompatible:
		typeScore = 0.0
	}

	return nameScore*nameWeight + typeScore*typeWeight
}

// Suggestion renders the candidate for a "did you mean" hint.
func (c Candidate) Suggestion() string {
	switch c.TypeCompat.Compatibility {
	case TypeConvertible:
		return fmt.Sprintf("%s (convertible, use SetConverted)", c.Name)
	case TypeNeedsPointerChange:
		return fmt.Sprintf("%s (%s)", c.Name, c.TypeCompat.Reason)
	default:
		return c.Name
	}
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by combined score descending, then by position for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].CombinedScore != c[j].CombinedScore {
		return c[i].CombinedScore > c[j].CombinedScore
	}

	return c[i].Index < c[j].Index
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with combined score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.CombinedScore >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Suggestions renders the top n candidates scoring at least threshold.
func (c CandidateList) Suggestions(threshold float64, n int) []string {
	var out []string
	for _, cand := range c.AboveThreshold(threshold).Top(n) {
		out = append(out, cand.Suggestion())
	}

	return out
}

// DefaultSuggestionThreshold is the minimum combined score worth suggesting.
const DefaultSuggestionThreshold = 0.3
