package lint_test

import (
	"context"
	"errors"
	"testing"

	"arrowlint/internal/ast"
	"arrowlint/internal/diag"
	"arrowlint/internal/lexer"
	"arrowlint/internal/lint"
	"arrowlint/internal/parser"
	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

func parse(t *testing.T, input string) (*ast.File, *ast.Builder) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(input))
	arenas := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lexer.New(fs.Get(id), lexer.Options{}), arenas, parser.Options{})
	return res.File, arenas
}

// countingRule reports every arrow and can fail on demand.
type countingRule struct {
	failOn  int
	created int
	seen    []ast.Kind
}

func (r *countingRule) Name() string { return "count-arrows" }

func (r *countingRule) Meta() lint.Meta {
	return lint.Meta{
		Type:   lint.TypeSuggestion,
		Schema: []lint.OptionSpec{{Name: "limit", Type: lint.OptionInt, Default: int64(0)}},
	}
}

var errBoom = errors.New("boom")

func (r *countingRule) Create(ctx *lint.Context) (lint.Handlers, error) {
	r.created++
	arrows := 0
	return lint.Handlers{
		ast.KindFile: func(n ast.Node) error {
			r.seen = append(r.seen, n.Kind())
			return nil
		},
		ast.KindArrowFunc: func(n ast.Node) error {
			r.seen = append(r.seen, n.Kind())
			arrows++
			if arrows == r.failOn {
				return errBoom
			}
			ctx.Report(diag.ArrowExpectedBefore, n.Extent(), "arrow").Emit()
			return nil
		},
	}, nil
}

func TestRunDispatchesByKind(t *testing.T) {
	file, arenas := parse(t, "a => b => c; d => d")
	rule := &countingRule{}
	bag := diag.NewBag(0)
	err := lint.Run(context.Background(), file, arenas, []lint.Configured{{
		Rule:   rule,
		Config: lint.RuleConfig{Enabled: true, Severity: diag.SevError},
	}}, diag.BagReporter{Bag: bag})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rule.created != 1 {
		t.Fatalf("Create called %d times", rule.created)
	}
	want := []ast.Kind{ast.KindFile, ast.KindArrowFunc, ast.KindArrowFunc, ast.KindArrowFunc}
	if len(rule.seen) != len(want) {
		t.Fatalf("seen = %v", rule.seen)
	}
	if bag.Len() != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Rule != "count-arrows" || d.Severity != diag.SevError {
		t.Fatalf("diagnostic not stamped: %+v", d)
	}
}

func TestRunPropagatesHandlerErrors(t *testing.T) {
	file, arenas := parse(t, "a => a; b => b; c => c")
	rule := &countingRule{failOn: 2}
	bag := diag.NewBag(0)
	err := lint.Run(context.Background(), file, arenas, []lint.Configured{{
		Rule:   rule,
		Config: lint.RuleConfig{Enabled: true},
	}}, diag.BagReporter{Bag: bag})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped errBoom, got %v", err)
	}
	if bag.Len() != 1 {
		t.Fatalf("walk must stop at the failing node, got %d diagnostics", bag.Len())
	}
}

func TestRunSkipsDisabledRulesAndHonorsCancel(t *testing.T) {
	file, arenas := parse(t, "a => a")
	rule := &countingRule{}
	if err := lint.Run(context.Background(), file, arenas, []lint.Configured{{Rule: rule}}, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rule.created != 0 {
		t.Fatalf("disabled rule must not be created")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := lint.Run(ctx, file, arenas, []lint.Configured{{Rule: rule, Config: lint.RuleConfig{Enabled: true}}}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	reg := lint.NewRegistry()
	factory := func() lint.Rule { return &countingRule{} }
	if err := reg.Register(factory); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(factory); err == nil {
		t.Fatalf("duplicate registration must fail")
	}
	if names := reg.Names(); len(names) != 1 || names[0] != "count-arrows" {
		t.Fatalf("Names = %v", names)
	}
	if _, err := reg.New("nope"); !errors.Is(err, lint.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
	meta, err := reg.Meta("count-arrows")
	if err != nil || meta.Type != lint.TypeSuggestion {
		t.Fatalf("Meta = %+v, %v", meta, err)
	}
}

func TestValidateOptions(t *testing.T) {
	schema := []lint.OptionSpec{
		{Name: "before", Type: lint.OptionBool},
		{Name: "limit", Type: lint.OptionInt},
	}
	got, err := lint.ValidateOptions("r", schema, map[string]any{"before": false, "limit": 3})
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}
	if got["limit"] != int64(3) {
		t.Fatalf("int not normalized: %#v", got["limit"])
	}
	if b := lint.BoolOption(got, "before"); b == nil || *b {
		t.Fatalf("BoolOption = %v", b)
	}
	if lint.BoolOption(got, "after") != nil {
		t.Fatalf("unset option must be nil")
	}

	if _, err := lint.ValidateOptions("r", schema, map[string]any{"befor": true}); !errors.Is(err, lint.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if _, err := lint.ValidateOptions("r", schema, map[string]any{"before": "yes"}); !errors.Is(err, lint.ErrBadOption) {
		t.Fatalf("expected ErrBadOption, got %v", err)
	}
}

func TestSourceCodeNeighbors(t *testing.T) {
	file, _ := parse(t, "(a) /* c */ => b")
	sc := lint.NewSourceCode(file)

	arrow := sc.IndexAt(12)
	if tok, _ := sc.Token(arrow); !tok.IsArrow() {
		t.Fatalf("IndexAt(12) = %v", tok)
	}
	before, ok := sc.TokenBefore(arrow, nil)
	if !ok || sc.Tokens[before].Kind != token.RParen {
		t.Fatalf("TokenBefore = %d", before)
	}
	open, ok := sc.TokenBefore(arrow, func(tok token.Token) bool { return tok.Kind == token.LParen })
	if !ok || open != 0 {
		t.Fatalf("filtered TokenBefore = %d", open)
	}
	after, ok := sc.TokenAfter(arrow, nil)
	if !ok || sc.Tokens[after].Text != "b" {
		t.Fatalf("TokenAfter = %d", after)
	}
	if _, ok := sc.TokenAfter(after, nil); ok {
		t.Fatalf("EOF must not be returned")
	}
	if _, ok := sc.TokenBefore(0, nil); ok {
		t.Fatalf("nothing precedes the first token")
	}
	if got := sc.Text(source.Span{File: file.Span.File, Start: 4, End: 11}); got != "/* c */" {
		t.Fatalf("Text = %q", got)
	}
}
