package arrowspacing_test

import (
	"context"
	"errors"
	"testing"

	"arrowlint/internal/ast"
	"arrowlint/internal/diag"
	"arrowlint/internal/fix"
	"arrowlint/internal/lexer"
	"arrowlint/internal/lint"
	"arrowlint/internal/parser"
	"arrowlint/internal/rules/arrowspacing"
	"arrowlint/internal/source"
)

type lintResult struct {
	fs    *source.FileSet
	id    source.FileID
	diags []diag.Diagnostic
}

func lintSource(t *testing.T, src string, opts map[string]any) lintResult {
	t.Helper()
	res, err := tryLint(src, opts)
	if err != nil {
		t.Fatalf("lint %q: %v", src, err)
	}
	return res
}

func tryLint(src string, opts map[string]any) (lintResult, error) {
	return tryLintFile("test.js", src, opts)
}

func tryLintFile(name, src string, opts map[string]any) (lintResult, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))
	arenas := ast.NewBuilder(ast.Hints{})
	file := parser.ParseFile(fs, lexer.New(fs.Get(id), lexer.Options{}), arenas, parser.Options{}).File

	bag := diag.NewBag(0)
	err := lint.Run(context.Background(), file, arenas, []lint.Configured{{
		Rule:   arrowspacing.New(),
		Config: lint.RuleConfig{Enabled: true, Severity: diag.SevWarning, Options: opts},
	}}, diag.BagReporter{Bag: bag})
	bag.Sort()
	return lintResult{fs: fs, id: id, diags: bag.Items()}, err
}

// fixSource applies fixes until no diagnostics remain, as the fix command does.
func fixSource(t *testing.T, src string, opts map[string]any) string {
	t.Helper()
	for pass := 0; pass < 10; pass++ {
		res := lintSource(t, src, opts)
		if len(res.diags) == 0 {
			return src
		}
		out, err := fix.Apply(res.fs, res.diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
		if err != nil {
			t.Fatalf("apply on %q: %v", src, err)
		}
		src = string(out.Outputs[res.id])
	}
	t.Fatalf("fixes did not converge for %q", src)
	return ""
}

func codes(diags []diag.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Code.ID()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var (
	yes = true
	no  = false
)

func TestValidCode(t *testing.T) {
	tests := []struct {
		code string
		opts map[string]any
	}{
		{"a => a", nil},
		{"() => {}", nil},
		{"(a) => {}", nil},
		{"a=> a", map[string]any{"before": false}},
		{"()=> {}", map[string]any{"before": false}},
		{"a =>a", map[string]any{"after": false}},
		{"() =>{}", map[string]any{"after": false}},
		{"a=>a", map[string]any{"before": false, "after": false}},
		{"(a)=>{}", map[string]any{"before": false, "after": false}},
		{"a   =>   a", nil},
		{"a\n=>\na", nil},
		{"async x => x", nil},
		{"f(a => ({}))", nil},
		{"const s = `${a => a}`", nil},
		{"`${xs.map(x => `${x => x}`)}`", nil},
		{"x >= y; a == b", map[string]any{"before": false, "after": false}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if res := lintSource(t, tt.code, tt.opts); len(res.diags) != 0 {
				t.Fatalf("unexpected diagnostics %v", codes(res.diags))
			}
		})
	}
}

func TestInvalidCode(t *testing.T) {
	tests := []struct {
		code   string
		opts   map[string]any
		output string
		want   []string
	}{
		{"a=>a", nil, "a => a", []string{"expectedBefore", "expectedAfter"}},
		{"()=>{}", nil, "() => {}", []string{"expectedBefore", "expectedAfter"}},
		{"(a)=>{}", nil, "(a) => {}", []string{"expectedBefore", "expectedAfter"}},
		{"a=> a", nil, "a => a", []string{"expectedBefore"}},
		{"a =>a", nil, "a => a", []string{"expectedAfter"}},
		{"a => a", map[string]any{"before": false, "after": false}, "a=>a", []string{"unexpectedBefore", "unexpectedAfter"}},
		{"(a) => {}", map[string]any{"before": false, "after": false}, "(a)=>{}", []string{"unexpectedBefore", "unexpectedAfter"}},
		{"a  =>  a", map[string]any{"before": false, "after": false}, "a=>a", []string{"unexpectedBefore", "unexpectedAfter"}},
		{"a =>a", map[string]any{"before": false, "after": true}, "a=> a", []string{"unexpectedBefore", "expectedAfter"}},
		{"a=> a", map[string]any{"before": true, "after": false}, "a =>a", []string{"expectedBefore", "unexpectedAfter"}},
		{"a /* c */ => a", map[string]any{"before": false}, "a=> a", []string{"unexpectedBefore"}},
		{"a\n  =>\n  a", map[string]any{"before": false, "after": false}, "a=>a", []string{"unexpectedBefore", "unexpectedAfter"}},
		{"async(x)=>x", nil, "async(x) => x", []string{"expectedBefore", "expectedAfter"}},
		{"const s = `${a=>a}`", nil, "const s = `${a => a}`", []string{"expectedBefore", "expectedAfter"}},
		{"`x${xs.map(x=>x)}y${() =>1}z`", nil, "`x${xs.map(x => x)}y${() => 1}z`", []string{"expectedBefore", "expectedAfter", "expectedAfter"}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			res := lintSource(t, tt.code, tt.opts)
			if got := codes(res.diags); !equal(got, tt.want) {
				t.Fatalf("codes = %v, want %v", got, tt.want)
			}
			if got := fixSource(t, tt.code, tt.opts); got != tt.output {
				t.Fatalf("fixed = %q, want %q", got, tt.output)
			}
		})
	}
}

func TestTypeScriptReturnTypes(t *testing.T) {
	tests := []struct {
		code string
		want []string
	}{
		{"const f = (x: number): Promise<void> => x;", nil},
		{"const g = (): string[] => [];", nil},
		{"const h = (m: Map<string, number>): Map<string, number> =>m;", []string{"expectedAfter"}},
		{"const j = (): string[]=>[];", []string{"expectedBefore", "expectedAfter"}},
		{"const k = async (): Array<Array<T>> =>x;", []string{"expectedAfter"}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			res, err := tryLintFile("test.ts", tt.code, nil)
			if err != nil {
				t.Fatalf("lint: %v", err)
			}
			if got := codes(res.diags); !equal(got, tt.want) {
				t.Fatalf("codes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiagnosticShape(t *testing.T) {
	src := "f(abc=>xyz)"
	res := lintSource(t, src, nil)
	if len(res.diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(res.diags))
	}

	before, after := res.diags[0], res.diags[1]
	if got := src[before.Primary.Start:before.Primary.End]; got != "abc" {
		t.Errorf("before anchor = %q, want the token before the arrow", got)
	}
	if got := src[after.Primary.Start:after.Primary.End]; got != "xyz" {
		t.Errorf("after anchor = %q, want the token after the arrow", got)
	}
	if before.Message != "Missing space before =>." || after.Message != "Missing space after =>." {
		t.Errorf("messages = %q, %q", before.Message, after.Message)
	}
	if before.Rule != arrowspacing.RuleName || before.Severity != diag.SevWarning {
		t.Errorf("rule/severity = %q/%v", before.Rule, before.Severity)
	}

	e := before.Fixes[0].Edits[0]
	if e.Kind() != diag.EditInsert || e.Span.Start != 5 || e.NewText != " " {
		t.Errorf("before fix = %+v, want insert at arrow start", e)
	}
	e = after.Fixes[0].Edits[0]
	if e.Kind() != diag.EditInsert || e.Span.Start != 7 || e.NewText != " " {
		t.Errorf("after fix = %+v, want insert at arrow end", e)
	}
}

func TestDeletionRangeIsExactGap(t *testing.T) {
	src := "a \t/* x */ =>  \n b"
	res := lintSource(t, src, map[string]any{"before": false, "after": false})
	if len(res.diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", codes(res.diags))
	}
	for i, want := range []string{" \t/* x */ ", "  \n "} {
		e := res.diags[i].Fixes[0].Edits[0]
		if e.Kind() != diag.EditDelete {
			t.Fatalf("edit %d kind = %v", i, e.Kind())
		}
		if got := src[e.Span.Start:e.Span.End]; got != want || e.OldText != want {
			t.Errorf("edit %d removes %q (guard %q), want %q", i, got, e.OldText, want)
		}
	}
	if res.diags[1].Message != "Unexpected space after =>." {
		t.Errorf("message = %q", res.diags[1].Message)
	}
}

func TestRequiredSideIsPresenceOnly(t *testing.T) {
	res := lintSource(t, "a    =>\t\tb", map[string]any{"before": true, "after": true})
	if len(res.diags) != 0 {
		t.Fatalf("wide spacing must be accepted, got %v", codes(res.diags))
	}
}

func TestSidesAreIndependent(t *testing.T) {
	base := codes(lintSource(t, "a=>b", map[string]any{"before": true, "after": true}).diags)
	flipped := codes(lintSource(t, "a=>b", map[string]any{"before": true, "after": false}).diags)
	if base[0] != flipped[0] || base[0] != "expectedBefore" {
		t.Fatalf("changing after must not affect before: %v vs %v", base, flipped)
	}
	if len(flipped) != 1 {
		t.Fatalf("after=false on a zero gap must be clean, got %v", flipped)
	}
}

func TestFixIsIdempotent(t *testing.T) {
	inputs := []string{
		"const f = (a,b)=>a+b, g = x=>y=>x+y;",
		"list.map(async(item)=>{ return item=>item })",
		"const h = a =>  b   => c",
	}
	configs := []map[string]any{
		nil,
		{"before": false},
		{"after": false},
		{"before": false, "after": false},
	}
	for _, in := range inputs {
		for _, cfg := range configs {
			once := fixSource(t, in, cfg)
			if res := lintSource(t, once, cfg); len(res.diags) != 0 {
				t.Fatalf("%q fixed to %q still has %v", in, once, codes(res.diags))
			}
			if twice := fixSource(t, once, cfg); twice != once {
				t.Fatalf("second fix changed %q to %q", once, twice)
			}
		}
	}
}

func TestNestedArrowsEachReported(t *testing.T) {
	res := lintSource(t, "a=>b=>c", nil)
	// "b" anchors both the after-side of the outer arrow and the before-side of the inner one
	want := []string{"expectedBefore", "expectedBefore", "expectedAfter", "expectedAfter"}
	if got := codes(res.diags); !equal(got, want) {
		t.Fatalf("codes = %v, want %v", got, want)
	}
	if got := fixSource(t, "a=>b=>c", nil); got != "a => b => c" {
		t.Fatalf("fixed = %q", got)
	}
}

func TestOptions(t *testing.T) {
	if got := arrowspacing.NewOptions(arrowspacing.RawOptions{}); got != arrowspacing.DefaultOptions() {
		t.Fatalf("empty raw options = %+v", got)
	}
	got := arrowspacing.NewOptions(arrowspacing.RawOptions{Before: &no, After: &yes})
	if got.Before || !got.After {
		t.Fatalf("overrides not applied: %+v", got)
	}
	raw := arrowspacing.RawFromMap(map[string]any{"after": false})
	if raw.Before != nil || raw.After == nil || *raw.After {
		t.Fatalf("RawFromMap = %+v", raw)
	}

	_, err := tryLint("a => a", map[string]any{"around": true})
	if !errors.Is(err, lint.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	_, err = tryLint("a => a", map[string]any{"before": "no"})
	if !errors.Is(err, lint.ErrBadOption) {
		t.Fatalf("expected ErrBadOption, got %v", err)
	}
}

func TestMalformedConstructPropagates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte("a => b"))
	arenas := ast.NewBuilder(ast.Hints{})
	file := parser.ParseFile(fs, lexer.New(fs.Get(id), lexer.Options{}), arenas, parser.Options{}).File
	arenas.Arrows.Get(file.Arrows[0]).Body.FirstToken = ast.NoToken

	bag := diag.NewBag(0)
	err := lint.Run(context.Background(), file, arenas, []lint.Configured{{
		Rule:   arrowspacing.New(),
		Config: lint.RuleConfig{Enabled: true},
	}}, diag.BagReporter{Bag: bag})
	if !errors.Is(err, arrowspacing.ErrMalformedConstruct) {
		t.Fatalf("expected ErrMalformedConstruct, got %v", err)
	}
	if bag.Len() != 0 {
		t.Fatalf("no diagnostic may be fabricated for a malformed construct")
	}
}

func TestLocateWithoutArrowBeforeBody(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte("a => b; c"))
	arenas := ast.NewBuilder(ast.Hints{})
	file := parser.ParseFile(fs, lexer.New(fs.Get(id), lexer.Options{}), arenas, parser.Options{}).File
	fn := arenas.Arrows.Get(file.Arrows[0])
	// point the body at "a": no arrow precedes it inside the construct
	fn.Body.FirstToken = 0

	_, err := arrowspacing.Locate(lint.NewSourceCode(file), fn)
	if !errors.Is(err, arrowspacing.ErrMalformedConstruct) {
		t.Fatalf("expected ErrMalformedConstruct, got %v", err)
	}
}

func TestEvaluateAndMeasure(t *testing.T) {
	tests := []struct {
		opts arrowspacing.Options
		gaps arrowspacing.Gaps
		want []diag.Code
	}{
		{arrowspacing.Options{Before: true, After: true}, arrowspacing.Gaps{}, []diag.Code{diag.ArrowExpectedBefore, diag.ArrowExpectedAfter}},
		{arrowspacing.Options{Before: true, After: true}, arrowspacing.Gaps{Before: 3, After: 1}, nil},
		{arrowspacing.Options{}, arrowspacing.Gaps{Before: 1, After: 0}, []diag.Code{diag.ArrowUnexpectedBefore}},
		{arrowspacing.Options{}, arrowspacing.Gaps{Before: 0, After: 2}, []diag.Code{diag.ArrowUnexpectedAfter}},
	}
	for _, tt := range tests {
		got := arrowspacing.Evaluate(tt.opts, tt.gaps)
		if len(got) != len(tt.want) {
			t.Fatalf("Evaluate(%+v, %+v) = %v", tt.opts, tt.gaps, got)
		}
		for i := range got {
			if got[i].Code != tt.want[i] {
				t.Fatalf("violation %d = %v, want %v", i, got[i].Code, tt.want[i])
			}
		}
	}
}

func TestMeta(t *testing.T) {
	meta := arrowspacing.New().Meta()
	if meta.Type != lint.TypeLayout || meta.Fixable != "whitespace" {
		t.Fatalf("meta = %+v", meta)
	}
	for _, id := range []string{"expectedBefore", "unexpectedBefore", "expectedAfter", "unexpectedAfter"} {
		if meta.Messages[id] == "" {
			t.Errorf("message %q missing", id)
		}
	}
}
