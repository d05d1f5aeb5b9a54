// Package config loads the union checker configuration from YAML.
//
// A minimal file:
//
//	version: "1"
//	patterns: ["./..."]
//	disable: [strategy]
//
// Missing fields take their defaults: every rule enabled, the union and pod
// packages of this module recognised, three suggestions per finding.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"reflect"

	"gopkg.in/yaml.v3"

	"union-engine/internal/common"
	"union-engine/options"
	"union-engine/typelist"
	"union-engine/utils"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = ".unioncheck.yaml"

const defaultMaxSuggestions = 3

// Config is the checker configuration file.
type Config struct {
	Version  string   `yaml:"version"`
	Patterns []string `yaml:"patterns,omitempty"`
	// Tests includes test files of the checked packages.
	Tests     bool     `yaml:"tests,omitempty"`
	BuildTags []string `yaml:"build_tags,omitempty"`
	// UnionPackages maps import paths declaring union types to the strategy
	// name their unions use ("managed" or "trivial").
	UnionPackages  map[string]string `yaml:"union_packages,omitempty"`
	Disable        []string          `yaml:"disable,omitempty"`
	MaxSuggestions int               `yaml:"max_suggestions,omitempty"`
}

// ModulePath returns the import path prefix of this module's packages.
func ModulePath() string {
	return path.Dir(reflect.TypeFor[typelist.Void]().PkgPath())
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)

	return &cfg
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadOrDefault loads path when given. With an empty path it loads
// DefaultFile if present and falls back to Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}

	cfg, err := LoadFile(DefaultFile)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Parse parses YAML data into a Config and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if len(cfg.Patterns) == 0 {
		cfg.Patterns = []string{"./..."}
	}

	if len(cfg.UnionPackages) == 0 {
		cfg.UnionPackages = map[string]string{
			ModulePath() + "/union": typelist.StrategyManaged.Name(),
			ModulePath() + "/pod":   typelist.StrategyTrivial.Name(),
		}
	}

	if cfg.MaxSuggestions == 0 {
		cfg.MaxSuggestions = defaultMaxSuggestions
	}

	cfg.MaxSuggestions = utils.Clamp(1, cfg.MaxSuggestions, typelist.MaxAlternatives)
}

// Validate reports unknown rule or strategy names.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Rules(); err != nil {
		errs = append(errs, fmt.Errorf("disable: %w", err))
	}

	if _, err := c.Strategies(); err != nil {
		errs = append(errs, fmt.Errorf("union_packages: %w", err))
	}

	return errors.Join(errs...)
}

// Rules returns the enabled rules: all of them minus Disable.
func (c *Config) Rules() (options.RuleEnum, error) {
	disabled, err := options.ParseRules(c.Disable...)
	if err != nil {
		return options.RuleNone, err
	}

	return options.RuleAll &^ disabled, nil
}

// Strategies returns UnionPackages with parsed strategy names.
func (c *Config) Strategies() (map[string]typelist.StrategyEnum, error) {
	out := make(map[string]typelist.StrategyEnum, len(c.UnionPackages))
	for _, pkg := range common.SortedKeys(c.UnionPackages) {
		name := c.UnionPackages[pkg]
		s, err := typelist.ParseStrategy(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pkg, err)
		}

		out[pkg] = s
	}

	return out, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
