package check

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"union-engine/internal/common"
	"union-engine/internal/config"
	"union-engine/internal/match"
	"union-engine/options"
	"union-engine/sum"
	"union-engine/typelist"
)

// Diagnostic codes.
const (
	CodeMembership = "UC001"
	CodeDuplicate  = "UC002"
	CodeGap        = "UC003"
	CodeTrivial    = "UC004"
	CodeStrategy   = "UC005"
)

// unionArity is the number of type parameters of a union type.
const unionArity = typelist.MaxAlternatives

var (
	voidType    = reflect.TypeFor[typelist.Void]()
	visitorPath = reflect.TypeFor[sum.Tag]().PkgPath()
)

// Checker checks union usage in loaded packages.
type Checker struct {
	rules          options.RuleEnum
	strategies     map[string]typelist.StrategyEnum
	maxSuggestions int
	wd             string
}

// New builds a Checker from a validated configuration.
func New(cfg *config.Config) (*Checker, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}

	strategies, err := cfg.Strategies()
	if err != nil {
		return nil, err
	}

	wd, _ := os.Getwd()

	return &Checker{
		rules:          rules,
		strategies:     strategies,
		maxSuggestions: cfg.MaxSuggestions,
		wd:             wd,
	}, nil
}

// Run loads patterns with the configuration of cfg and checks them.
func Run(cfg *config.Config, patterns ...string) (*Report, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}

	if len(patterns) == 0 {
		patterns = cfg.Patterns
	}

	pkgs, err := Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}

	return c.Check(pkgs), nil
}

// site is one instantiation found in a package.
type site struct {
	pkg   *packages.Package
	ident *ast.Ident
	inst  types.Instance
	obj   types.Object
}

// Check runs the enabled rules over pkgs.
func (c *Checker) Check(pkgs []*packages.Package) *Report {
	r := &Report{unions: make(map[string]*UnionInfo)}

	for _, pkg := range pkgs {
		for _, s := range c.sites(pkg) {
			switch s.obj.(type) {
			case *types.TypeName:
				c.checkUnionType(r, s)
			case *types.Func:
				c.checkCall(r, s)
			}
		}

		c.checkVisitors(r, pkg)
	}

	return r.finish()
}

// sites returns the instantiations of union package objects in pkg in
// source order.
func (c *Checker) sites(pkg *packages.Package) []site {
	if pkg.TypesInfo == nil {
		return nil
	}

	var out []site
	for ident, inst := range pkg.TypesInfo.Instances {
		obj := pkg.TypesInfo.Uses[ident]
		if obj == nil || obj.Pkg() == nil {
			continue
		}

		if _, ok := c.strategies[obj.Pkg().Path()]; !ok {
			continue
		}

		out = append(out, site{pkg: pkg, ident: ident, inst: inst, obj: obj})
	}

	slices.SortFunc(out, func(a, b site) int { return cmp.Compare(a.ident.Pos(), b.ident.Pos()) })

	return out
}

// checkUnionType applies the list rules to a union type instantiation.
func (c *Checker) checkUnionType(r *Report, s site) {
	named, ok := unionOf(s.inst.Type)
	if !ok {
		return
	}

	args := typeArgs(named)
	if slices.ContainsFunc(args, hasTypeParam) {
		return
	}

	pos := c.position(s.pkg.Fset, s.ident.Pos())
	subject := unionString(named, s.pkg)
	strategy := c.strategies[s.obj.Pkg().Path()]
	alts := nonVoid(args)
	before := r.Diagnostics.Len()

	if c.rules.Has(options.RuleGap) {
		c.checkGap(r, s.pkg, args, subject, pos)
	}

	if c.rules.Has(options.RuleDuplicate) {
		for j := range alts {
			for i := range j {
				if types.Identical(alts[i], alts[j]) {
					r.Diagnostics.AddError(CodeDuplicate,
						fmt.Sprintf("duplicate alternative %s at positions %d and %d", typeString(alts[j], s.pkg), i, j),
						subject, pos)
				}
			}
		}
	}

	allTrivial := true
	for _, alt := range alts {
		ok, why := isTrivial(alt)
		if ok {
			continue
		}

		allTrivial = false
		if strategy == typelist.StrategyTrivial && c.rules.Has(options.RuleTrivial) {
			r.Diagnostics.AddError(CodeTrivial,
				fmt.Sprintf("alternative %s of a trivial union is not trivial: %s", typeString(alt, s.pkg), why),
				subject, pos, "a managed union")
		}
	}

	clean := r.Diagnostics.Len() == before
	if clean && allTrivial && len(alts) > 0 && strategy == typelist.StrategyManaged && c.rules.Has(options.RuleStrategy) {
		r.Diagnostics.AddWarning(CodeStrategy,
			"every alternative is trivial; a trivial union needs no method table",
			subject, pos, c.trivialPackages()...)
	}

	names := make([]string, len(alts))
	for i, alt := range alts {
		names[i] = typeString(alt, s.pkg)
	}

	r.addUnion(subject, pos, s.obj.Pkg().Path(), strategy, names, allTrivial, c.layout(s.pkg, alts))
}

func (c *Checker) checkGap(r *Report, pkg *packages.Package, args []types.Type, subject, pos string) {
	gap := slices.IndexFunc(args, isVoid)
	if gap < 0 {
		return
	}

	if gap == 0 && !slices.ContainsFunc(args, func(t types.Type) bool { return !isVoid(t) }) {
		r.Diagnostics.AddError(CodeGap, "union has no alternatives", subject, pos)
		return
	}

	for j := gap + 1; j < len(args); j++ {
		if !isVoid(args[j]) {
			r.Diagnostics.AddError(CodeGap,
				fmt.Sprintf("Void at position %d is followed by alternative %s at position %d", gap, typeString(args[j], pkg), j),
				subject, pos)

			return
		}
	}
}

// checkCall applies the membership rule to a type-directed union function:
// its leading type parameter, when it has more than the union's seven, is
// the requested alternative.
func (c *Checker) checkCall(r *Report, s site) {
	if !c.rules.Has(options.RuleMembership) || s.inst.TypeArgs.Len() <= unionArity {
		return
	}

	sig, ok := s.inst.Type.(*types.Signature)
	if !ok || sig.Params().Len() == 0 {
		return
	}

	named, ok := unionOf(sig.Params().At(0).Type())
	if !ok {
		return
	}

	requested := s.inst.TypeArgs.At(0)
	c.checkMember(r, s.pkg, s.ident.Pos(), named, requested,
		fmt.Sprintf("%s[%s]", s.obj.Name(), typeString(requested, s.pkg)))
}

// checkVisitors finds sum.On[T] and sum.OnRef[T] passed straight to a
// union MultiMatch call and checks T against the union.
func (c *Checker) checkVisitors(r *Report, pkg *packages.Package) {
	if !c.rules.Has(options.RuleMembership) || pkg.TypesInfo == nil {
		return
	}

	for _, file := range pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok || len(call.Args) < 2 {
				return true
			}

			fn, inst, ok := c.calleeInstance(pkg, call.Fun)
			if !ok || fn.Name() != "MultiMatch" {
				return true
			}

			sig, ok := inst.Type.(*types.Signature)
			if !ok {
				return true
			}

			named, ok := unionOf(sig.Params().At(0).Type())
			if !ok {
				return true
			}

			for _, arg := range call.Args[1:] {
				c.checkVisitorArg(r, pkg, named, arg)
			}

			return true
		})
	}
}

func (c *Checker) checkVisitorArg(r *Report, pkg *packages.Package, named *types.Named, arg ast.Expr) {
	call, ok := ast.Unparen(arg).(*ast.CallExpr)
	if !ok {
		return
	}

	ident := calleeIdent(call.Fun)
	if ident == nil {
		return
	}

	obj, ok := pkg.TypesInfo.Uses[ident].(*types.Func)
	if !ok || obj.Pkg() == nil || obj.Pkg().Path() != visitorPath {
		return
	}

	inst, ok := pkg.TypesInfo.Instances[ident]
	if !ok || inst.TypeArgs.Len() != 1 {
		return
	}

	target := inst.TypeArgs.At(0)
	c.checkMember(r, pkg, ident.Pos(), named, target,
		fmt.Sprintf("visitor %s[%s]", obj.Name(), typeString(target, pkg)))
}

func (c *Checker) checkMember(r *Report, pkg *packages.Package, at token.Pos, named *types.Named, requested types.Type, what string) {
	args := typeArgs(named)
	if hasTypeParam(requested) || slices.ContainsFunc(args, hasTypeParam) {
		return
	}

	alts := nonVoid(args)
	if slices.ContainsFunc(alts, func(t types.Type) bool { return types.Identical(t, requested) }) {
		return
	}

	suggestions := match.RankAlternatives(requested, alts, qualifier(pkg)).
		Suggestions(match.DefaultSuggestionThreshold, c.maxSuggestions)

	r.Diagnostics.AddError(CodeMembership,
		fmt.Sprintf("%s: %s is not an alternative", what, typeString(requested, pkg)),
		unionString(named, pkg), c.position(pkg.Fset, at), suggestions...)
}

// calleeInstance resolves the generic union function called by fun.
func (c *Checker) calleeInstance(pkg *packages.Package, fun ast.Expr) (*types.Func, types.Instance, bool) {
	ident := calleeIdent(fun)
	if ident == nil {
		return nil, types.Instance{}, false
	}

	obj, ok := pkg.TypesInfo.Uses[ident].(*types.Func)
	if !ok || obj.Pkg() == nil {
		return nil, types.Instance{}, false
	}

	if _, ok := c.strategies[obj.Pkg().Path()]; !ok {
		return nil, types.Instance{}, false
	}

	inst, ok := pkg.TypesInfo.Instances[ident]

	return obj, inst, ok
}

func (c *Checker) trivialPackages() []string {
	var out []string
	for _, path := range common.SortedKeys(c.strategies) {
		if c.strategies[path] == typelist.StrategyTrivial {
			out = append(out, path+".Union")
		}
	}

	return out
}

func (c *Checker) layout(pkg *packages.Package, alts []types.Type) typelist.Layout {
	sizes := pkg.TypesSizes
	if sizes == nil {
		sizes = types.SizesFor("gc", runtime.GOARCH)
	}

	l := typelist.Layout{Align: 1}
	for _, alt := range alts {
		l.Size = max(l.Size, uintptr(sizes.Sizeof(alt)))
		l.Align = max(l.Align, uintptr(sizes.Alignof(alt)))
	}

	return l
}

// position formats pos relative to the working directory when possible.
func (c *Checker) position(fset *token.FileSet, pos token.Pos) string {
	p := fset.Position(pos)
	if rel, err := filepath.Rel(c.wd, p.Filename); err == nil && !strings.HasPrefix(rel, "..") {
		p.Filename = rel
	}

	return p.String()
}

// calleeIdent returns the identifier naming the called function in
// f, pkg.f, f[T] or pkg.f[T, U].
func calleeIdent(fun ast.Expr) *ast.Ident {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f
	case *ast.SelectorExpr:
		return f.Sel
	case *ast.IndexExpr:
		return calleeIdent(f.X)
	case *ast.IndexListExpr:
		return calleeIdent(f.X)
	}

	return nil
}

// unionOf returns the union type behind t, looking through pointers and
// aliases.
func unionOf(t types.Type) (*types.Named, bool) {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok || named.TypeArgs().Len() != unionArity {
		return nil, false
	}

	if named.Origin().Obj().Name() != "Union" {
		return nil, false
	}

	return named, true
}

func typeArgs(named *types.Named) []types.Type {
	list := named.TypeArgs()

	out := make([]types.Type, list.Len())
	for i := range out {
		out[i] = list.At(i)
	}

	return out
}

func isVoid(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}

	return named.Obj().Pkg().Path() == voidType.PkgPath() && named.Obj().Name() == voidType.Name()
}

func nonVoid(args []types.Type) []types.Type {
	return slices.DeleteFunc(slices.Clone(args), isVoid)
}

// hasTypeParam reports whether t mentions a type parameter, in which case
// nothing can be decided before instantiation.
func hasTypeParam(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.TypeParam:
		return true
	case *types.Pointer:
		return hasTypeParam(t.Elem())
	case *types.Slice:
		return hasTypeParam(t.Elem())
	case *types.Array:
		return hasTypeParam(t.Elem())
	case *types.Chan:
		return hasTypeParam(t.Elem())
	case *types.Map:
		return hasTypeParam(t.Key()) || hasTypeParam(t.Elem())
	case *types.Named:
		return slices.ContainsFunc(typeArgs(t), hasTypeParam)
	}

	return false
}

// unionString formats a union type without its trailing Void slots:
// union.Union[int, string].
func unionString(named *types.Named, pkg *packages.Package) string {
	args := typeArgs(named)

	n := len(args)
	for n > 0 && isVoid(args[n-1]) {
		n--
	}

	parts := make([]string, n)
	for i, arg := range args[:n] {
		if isVoid(arg) {
			parts[i] = voidType.Name()
			continue
		}

		parts[i] = typeString(arg, pkg)
	}

	name := named.Obj().Name()
	if q := qualifier(pkg)(named.Obj().Pkg()); q != "" {
		name = q + "." + name
	}

	return name + "[" + strings.Join(parts, ", ") + "]"
}

func qualifier(pkg *packages.Package) types.Qualifier {
	return func(p *types.Package) string {
		if p == pkg.Types {
			return ""
		}

		return p.Name()
	}
}

func typeString(t types.Type, pkg *packages.Package) string {
	return types.TypeString(t, qualifier(pkg))
}
