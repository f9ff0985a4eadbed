package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arrowlint/internal/config"
	"arrowlint/internal/diag"
	"arrowlint/internal/diagfmt"
	"arrowlint/internal/driver"
	"arrowlint/internal/fix"
	"arrowlint/internal/rules"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRulesCommandJSON(t *testing.T) {
	out, err := execute(t, "", "rules", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var payload []rulePayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(payload) != 1 || payload[0].Name != "arrow-spacing" || payload[0].Fixable != "whitespace" {
		t.Fatalf("payload = %+v", payload)
	}
	if len(payload[0].Options) != 2 {
		t.Errorf("options = %+v", payload[0].Options)
	}
}

func TestCheckStdinJSON(t *testing.T) {
	out, err := execute(t, "const f = (a)=>a;\n", "--quiet", "--log-level", "off", "check", "--stdin", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var got diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.Count != 2 {
		t.Fatalf("count = %d, want 2", got.Count)
	}
	if got.Diagnostics[0].Code != "expectedBefore" || got.Diagnostics[1].Code != "expectedAfter" {
		t.Errorf("codes = %s, %s", got.Diagnostics[0].Code, got.Diagnostics[1].Code)
	}
	if got.Diagnostics[0].Location.File != "<stdin>" {
		t.Errorf("file = %q", got.Diagnostics[0].Location.File)
	}
}

func TestFixStdin(t *testing.T) {
	out, err := execute(t, "list.map(x=>x*2)\n", "--quiet", "--log-level", "off", "fix", "--stdin")
	if err != nil {
		t.Fatal(err)
	}
	if out != "list.map(x => x*2)\n" {
		t.Errorf("fixed = %q", out)
	}
}

func TestInitWritesConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	out, err := execute(t, "", "--log-level", "off", "init", dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "arrowlint.toml") {
		t.Errorf("output = %q", out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "arrowlint.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[rules.arrow-spacing]") {
		t.Errorf("config = %s", data)
	}
	if _, err := execute(t, "", "--log-level", "off", "init", dir); err == nil {
		t.Error("second init without --force must fail")
	}
}

func TestPrintFixReport(t *testing.T) {
	report := &driver.FixReport{
		Changes: []fix.FileChange{{Path: "a.js", EditCount: 2, Written: true}},
		Skipped: []fix.SkippedFix{{Title: "Insert space", Reason: "conflicts with another fix"}},
		Applied: []fix.AppliedFix{{ID: "x"}},
	}
	var buf bytes.Buffer
	if err := printFixReport(&buf, report, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Would update files:", "a.js (2 edits)", "Insert space [(unnamed)]: conflicts with another fix"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := printFixReport(&buf, &driver.FixReport{}, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No applicable fixes found.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestSummarizeSkipsLoadFailures(t *testing.T) {
	configured, err := config.Default().RuleConfigs(rules.Builtin())
	if err != nil {
		t.Fatal(err)
	}
	res, err := driver.LintSource(context.Background(), "s.js", []byte("a=>b"), driver.Options{Rules: configured})
	if err != nil {
		t.Fatal(err)
	}
	res.Files = append(res.Files, driver.FileResult{
		Path: "missing.js",
		Bag:  diag.NewBag(1),
		Err:  errors.New("load missing.js: no such file"),
	})
	s := summarize(res, []string{"missing.js"}, 0)
	if s.Files != 1 || s.Warnings != 2 || s.Fixable != 2 || len(s.Failed) != 1 {
		t.Errorf("summary = %+v", s)
	}
	if !res.HasErrors() {
		t.Error("a failed file must count as an error")
	}
}

func TestUnknownFormatIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.js")
	if err := os.WriteFile(path, []byte("x => x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "", "--log-level", "off", "tokenize", "--format", "xml", path)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("err = %v, want unknown format", err)
	}
}
