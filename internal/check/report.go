package check

import (
	"cmp"
	"slices"

	"union-engine/internal/diagnostic"
	"union-engine/typelist"
)

// UnionInfo describes one distinct union type seen by the checker.
type UnionInfo struct {
	Type         string
	Package      string
	Strategy     typelist.StrategyEnum
	Alternatives []string
	AllTrivial   bool
	Layout       typelist.Layout
	// Position of the first instantiation.
	Position string
	Uses     int
}

// Report is the result of a check run.
type Report struct {
	Diagnostics diagnostic.Diagnostics
	Unions      []UnionInfo

	unions map[string]*UnionInfo
}

func (r *Report) addUnion(subject, pos, pkgPath string, strategy typelist.StrategyEnum, alts []string, allTrivial bool, layout typelist.Layout) {
	if info, ok := r.unions[subject]; ok {
		info.Uses++
		return
	}

	r.unions[subject] = &UnionInfo{
		Type:         subject,
		Package:      pkgPath,
		Strategy:     strategy,
		Alternatives: alts,
		AllTrivial:   allTrivial,
		Layout:       layout,
		Position:     pos,
		Uses:         1,
	}
}

func (r *Report) finish() *Report {
	r.Unions = r.Unions[:0]
	for _, info := range r.unions {
		r.Unions = append(r.Unions, *info)
	}

	slices.SortFunc(r.Unions, func(a, b UnionInfo) int {
		return cmp.Compare(a.Type, b.Type)
	})

	return r
}

// Union returns the union whose type string is typ.
func (r *Report) Union(typ string) (UnionInfo, bool) {
	i := slices.IndexFunc(r.Unions, func(u UnionInfo) bool { return u.Type == typ })
	if i < 0 {
		return UnionInfo{}, false
	}

	return r.Unions[i], true
}

// Err returns the combined error diagnostics, or nil.
func (r *Report) Err() error {
	return r.Diagnostics.Error()
}
