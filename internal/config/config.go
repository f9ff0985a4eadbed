// Package config loads arrowlint.toml and turns it into rule configurations.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"arrowlint/internal/diag"
	"arrowlint/internal/lint"
)

// FileName is the configuration file looked up from the target upwards.
const FileName = "arrowlint.toml"

// DefaultMaxDiagnostics caps diagnostics per file when the file does not say otherwise.
const DefaultMaxDiagnostics = 500

var (
	// ErrUnknownOption marks keys that no table or rule accepts.
	ErrUnknownOption = lint.ErrUnknownOption
	ErrBadSeverity   = errors.New("invalid severity")
)

type LintConfig struct {
	Include        []string `toml:"include"`
	Exclude        []string `toml:"exclude"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
}

// RuleTable is one [rules.<name>] table: severity plus rule options.
type RuleTable struct {
	Severity string
	Options  map[string]any
}

type Config struct {
	// Path is the file the configuration came from; empty for defaults.
	Path string
	// Root is the directory globs are matched against.
	Root  string
	Lint  LintConfig
	Rules map[string]RuleTable
}

type fileConfig struct {
	Lint  LintConfig                `toml:"lint"`
	Rules map[string]map[string]any `toml:"rules"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Lint: LintConfig{
			Include:        []string{"**/*.js", "**/*.mjs", "**/*.cjs", "**/*.jsx", "**/*.ts", "**/*.tsx"},
			Exclude:        []string{"**/node_modules/**", "**/.git/**"},
			MaxDiagnostics: DefaultMaxDiagnostics,
		},
		Rules: map[string]RuleTable{},
	}
}

// Find walks up from startDir looking for arrowlint.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path and overlays it on Default.
func Load(path string) (*Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownOption, strings.Join(keys, ", "))
	}

	cfg := Default()
	cfg.Path = path
	cfg.Root = filepath.Dir(path)
	if meta.IsDefined("lint", "include") {
		cfg.Lint.Include = raw.Lint.Include
	}
	if meta.IsDefined("lint", "exclude") {
		cfg.Lint.Exclude = raw.Lint.Exclude
	}
	if meta.IsDefined("lint", "max_diagnostics") {
		if raw.Lint.MaxDiagnostics < 0 {
			return nil, fmt.Errorf("%s: [lint].max_diagnostics must not be negative", path)
		}
		cfg.Lint.MaxDiagnostics = raw.Lint.MaxDiagnostics
	}

	for name, table := range raw.Rules {
		rt := RuleTable{Options: make(map[string]any, len(table))}
		for k, v := range table {
			if k == "severity" {
				s, ok := v.(string)
				if !ok {
					return nil, fmt.Errorf("%s: [rules.%s].severity: %w: %v", path, name, ErrBadSeverity, v)
				}
				rt.Severity = s
				continue
			}
			rt.Options[k] = v
		}
		cfg.Rules[name] = rt
	}
	return cfg, nil
}

// Resolve loads explicit when set, otherwise the nearest file above
// startDir, otherwise Default rooted at startDir.
func Resolve(explicit, startDir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if ok {
		return Load(path)
	}
	cfg := Default()
	root := startDir
	if info, err := os.Stat(startDir); err == nil && !info.IsDir() {
		root = filepath.Dir(startDir)
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	cfg.Root = root
	return cfg, nil
}

// parseRuleSeverity maps off/warn/error; an empty string means warn.
func parseRuleSeverity(s string) (enabled bool, sev diag.Severity, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return true, diag.SevWarning, nil
	case "off", "0":
		return false, diag.SevWarning, nil
	}
	sev, err = diag.ParseSeverity(s)
	if err != nil {
		return false, sev, fmt.Errorf("%w: %q", ErrBadSeverity, s)
	}
	return true, sev, nil
}

// RuleConfigs builds the configured rule list for every registered rule.
// Tables naming unknown rules and options outside a rule's schema are errors.
func (c *Config) RuleConfigs(reg *lint.Registry) ([]lint.Configured, error) {
	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := reg.New(name); err != nil {
			return nil, fmt.Errorf("%s: [rules.%s]: %w", c.source(), name, err)
		}
	}

	out := make([]lint.Configured, 0, len(reg.Names()))
	for _, name := range reg.Names() {
		rule, err := reg.New(name)
		if err != nil {
			return nil, err
		}
		table := c.Rules[name]
		enabled, sev, err := parseRuleSeverity(table.Severity)
		if err != nil {
			return nil, fmt.Errorf("%s: [rules.%s].severity: %w", c.source(), name, err)
		}
		opts, err := lint.ValidateOptions(name, rule.Meta().Schema, table.Options)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.source(), err)
		}
		out = append(out, lint.Configured{
			Rule:   rule,
			Config: lint.RuleConfig{Enabled: enabled, Severity: sev, Options: opts},
		})
	}
	return out, nil
}

func (c *Config) source() string {
	if c.Path == "" {
		return "<defaults>"
	}
	return c.Path
}

// Encode writes cfg as TOML, listing every registered rule with its
// severity and schema defaults.
func Encode(w io.Writer, cfg *Config, reg *lint.Registry) error {
	out := fileConfig{
		Lint:  cfg.Lint,
		Rules: make(map[string]map[string]any),
	}
	for _, name := range reg.Names() {
		meta, err := reg.Meta(name)
		if err != nil {
			return err
		}
		table := map[string]any{"severity": "warn"}
		for _, opt := range meta.Schema {
			table[opt.Name] = opt.Default
		}
		if rt, ok := cfg.Rules[name]; ok {
			if rt.Severity != "" {
				table["severity"] = rt.Severity
			}
			for k, v := range rt.Options {
				table[k] = v
			}
		}
		out.Rules[name] = table
	}
	if err := toml.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("encode %s: %w", FileName, err)
	}
	return nil
}

// WriteDefault creates dir/arrowlint.toml; it refuses to overwrite unless force is set.
func WriteDefault(dir string, reg *lint.Registry, force bool) (string, error) {
	path := filepath.Join(dir, FileName)
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return path, fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return path, fmt.Errorf("create %s: %w", path, err)
	}
	encErr := Encode(f, Default(), reg)
	closeErr := f.Close()
	if encErr != nil {
		return path, encErr
	}
	if closeErr != nil {
		return path, fmt.Errorf("close %s: %w", path, closeErr)
	}
	return path, nil
}
