package check

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/tools/go/packages"

	"union-engine/internal/config"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedTypesSizes |
	packages.NeedImports

// Load loads the packages matching patterns. Packages that fail to compile
// are reported together.
func Load(cfg *config.Config, patterns ...string) ([]*packages.Package, error) {
	pcfg := &packages.Config{
		Mode:  LoadMode,
		Tests: cfg.Tests,
	}

	if len(cfg.BuildTags) > 0 {
		pcfg.BuildFlags = []string{"-tags=" + strings.Join(cfg.BuildTags, ",")}
	}

	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages match %s", strings.Join(patterns, " "))
	}

	return pkgs, nil
}
