// Package match ranks the alternatives of a union against a type that is
// not one of them, to produce "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: normalizes type names for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - ScoreTypeCompatibility: scores type compatibility using go/types
//   - RankAlternatives: ranks the alternatives closest to a requested type
package match
