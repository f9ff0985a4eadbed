package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arrowlint/internal/diag"
	"arrowlint/internal/lint"
	"arrowlint/internal/rules"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok, err := Find(nested)
	if err != nil || !ok || got != want {
		t.Fatalf("Find = %q, %v, %v; want %q", got, ok, err, want)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[lint]
exclude = ["vendor/**"]

[rules.arrow-spacing]
severity = "error"
before = false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Lint.Include) != len(Default().Lint.Include) {
		t.Fatalf("include must keep defaults, got %v", cfg.Lint.Include)
	}
	if len(cfg.Lint.Exclude) != 1 || cfg.Lint.Exclude[0] != "vendor/**" {
		t.Fatalf("exclude = %v", cfg.Lint.Exclude)
	}
	if cfg.Lint.MaxDiagnostics != DefaultMaxDiagnostics || cfg.Root != dir {
		t.Fatalf("cfg = %+v", cfg)
	}

	configured, err := cfg.RuleConfigs(rules.Builtin())
	if err != nil {
		t.Fatalf("RuleConfigs: %v", err)
	}
	rc := configured[0].Config
	if !rc.Enabled || rc.Severity != diag.SevError {
		t.Fatalf("rule config = %+v", rc)
	}
	if b := lint.BoolOption(rc.Options, "before"); b == nil || *b {
		t.Fatalf("before option = %v", b)
	}
	if lint.BoolOption(rc.Options, "after") != nil {
		t.Fatalf("after must stay unset so the rule default applies")
	}
}

func TestUnknownKeysAreErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"lint key", "[lint]\nincludes = []\n", ErrUnknownOption},
		{"top table", "[linter]\nx = 1\n", ErrUnknownOption},
		{"rule option", "[rules.arrow-spacing]\naround = true\n", ErrUnknownOption},
		{"rule name", "[rules.arrow-space]\nbefore = true\n", lint.ErrUnknownRule},
		{"option type", "[rules.arrow-spacing]\nbefore = \"yes\"\n", lint.ErrBadOption},
		{"severity", "[rules.arrow-spacing]\nseverity = \"loud\"\n", ErrBadSeverity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			cfg, err := Load(path)
			if err == nil {
				_, err = cfg.RuleConfigs(rules.Builtin())
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSeverityOffDisablesRule(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[rules.arrow-spacing]\nseverity = \"off\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	configured, err := cfg.RuleConfigs(rules.Builtin())
	if err != nil {
		t.Fatal(err)
	}
	if configured[0].Config.Enabled {
		t.Fatalf("rule must be disabled")
	}
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Resolve("", dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Path != "" || cfg.Root == "" {
		t.Fatalf("cfg = %+v", cfg)
	}
	configured, err := cfg.RuleConfigs(rules.Builtin())
	if err != nil || !configured[0].Config.Enabled || configured[0].Config.Severity != diag.SevWarning {
		t.Fatalf("defaults: %+v, %v", configured, err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Default(), rules.Builtin()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	text := buf.String()
	for _, want := range []string{"[lint]", "max_diagnostics = 500", "[rules.arrow-spacing]", "before = true", "severity = \"warn\""} {
		if !strings.Contains(text, want) {
			t.Fatalf("encoded config lacks %q:\n%s", want, text)
		}
	}

	dir := t.TempDir()
	path, err := WriteDefault(dir, rules.Builtin(), false)
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if _, err := WriteDefault(dir, rules.Builtin(), false); err == nil {
		t.Fatalf("second WriteDefault must refuse to overwrite")
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load written default: %v", err)
	}
	if _, err := cfg.RuleConfigs(rules.Builtin()); err != nil {
		t.Fatalf("written default must validate: %v", err)
	}
}
