// Package config loads automata.yaml, which names extra checkers built from
// machine description files and binary patterns.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"automata/internal/machine"
	"automata/internal/regex"
	"automata/internal/strength"
)

// DefaultPath is used when neither a flag nor AUTOMATA_CONFIG names a file.
const DefaultPath = "automata.yaml"

// BuiltinChecker names the embedded password policy.
const BuiltinChecker = "password"

var (
	// ErrConfigValidation is returned when the configuration is inconsistent.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrUnknownChecker is returned for a checker name that is not configured.
	ErrUnknownChecker = errors.New("unknown checker")
)

// Config is the content of automata.yaml.
type Config struct {
	Color    *bool              `yaml:"color"`
	Checkers map[string]Checker `yaml:"checkers"`

	dir string
}

// Checker is a named conjunction of rules.
type Checker struct {
	Rules []Rule `yaml:"rules"`
}

// Rule is backed by either a machine description file or a pattern.
type Rule struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Machine     string `yaml:"machine"`
	Pattern     string `yaml:"pattern"`
}

// LoadEnvFiles loads .env from the working directory if it exists.
func LoadEnvFiles() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// Load reads and validates the configuration at path. A missing file
// yields an empty configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{dir: filepath.Dir(path)}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	for name, c := range cfg.Checkers {
		for i := range c.Rules {
			c.Rules[i].Machine = os.ExpandEnv(c.Rules[i].Machine)
		}
		cfg.Checkers[name] = c
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every rule is named once and has exactly one source.
func (c *Config) Validate() error {
	for name, ch := range c.Checkers {
		if name == BuiltinChecker {
			return fmt.Errorf("%w: checker name %q is reserved", ErrConfigValidation, name)
		}
		if len(ch.Rules) == 0 {
			return fmt.Errorf("%w: checker %q has no rules", ErrConfigValidation, name)
		}
		seen := make(map[string]bool, len(ch.Rules))
		for i, r := range ch.Rules {
			if r.Name == "" {
				return fmt.Errorf("%w: checker %q rule %d has no name", ErrConfigValidation, name, i)
			}
			if seen[r.Name] {
				return fmt.Errorf("%w: checker %q repeats rule %q", ErrConfigValidation, name, r.Name)
			}
			seen[r.Name] = true
			if (r.Machine == "") == (r.Pattern == "") {
				return fmt.Errorf("%w: rule %q needs exactly one of machine or pattern", ErrConfigValidation, r.Name)
			}
		}
	}
	return nil
}

// ColorEnabled reports the configured color preference, defaulting to on.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// CheckerNames lists the built-in checker followed by the configured ones.
func (c *Config) CheckerNames() []string {
	names := make([]string, 0, len(c.Checkers))
	for name := range c.Checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{BuiltinChecker}, names...)
}

// Checker builds the named checker, loading its machines and compiling its
// patterns. Machine paths are relative to the configuration file.
func (c *Config) Checker(name string) (*strength.Checker, error) {
	if name == BuiltinChecker {
		return strength.Default()
	}
	ch, ok := c.Checkers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChecker, name)
	}
	rules := make([]strength.Rule, 0, len(ch.Rules))
	for _, r := range ch.Rules {
		var acc machine.Acceptor
		switch {
		case r.Machine != "":
			p := r.Machine
			if !filepath.IsAbs(p) {
				p = filepath.Join(c.dir, p)
			}
			m, err := machine.Load(p)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", r.Name, err)
			}
			acc = m
		default:
			re, err := regex.Compile(r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", r.Name, err)
			}
			acc = re
		}
		rules = append(rules, strength.Rule{Name: r.Name, Description: r.Description, Acceptor: acc})
	}
	return strength.New(rules...), nil
}
