package arrowspacing

import (
	"fmt"

	"go.uber.org/zap"

	"arrowlint/internal/ast"
	"arrowlint/internal/diag"
	"arrowlint/internal/lint"
)

const RuleName = "arrow-spacing"

// Rule is the arrow-spacing rule. It carries no state between files.
type Rule struct{}

func New() lint.Rule { return Rule{} }

func (Rule) Name() string { return RuleName }

func (Rule) Meta() lint.Meta {
	return lint.Meta{
		Type:        lint.TypeLayout,
		Description: "Enforce consistent spacing before and after the arrow in arrow functions",
		URL:         "https://eslint.style/rules/js/arrow-spacing",
		Fixable:     "whitespace",
		Schema: []lint.OptionSpec{
			{Name: "before", Type: lint.OptionBool, Default: true, Description: "require a space before =>"},
			{Name: "after", Type: lint.OptionBool, Default: true, Description: "require a space after =>"},
		},
		Messages: map[string]string{
			diag.ArrowExpectedBefore.ID():   diag.ArrowExpectedBefore.Title(),
			diag.ArrowUnexpectedBefore.ID(): diag.ArrowUnexpectedBefore.Title(),
			diag.ArrowExpectedAfter.ID():    diag.ArrowExpectedAfter.Title(),
			diag.ArrowUnexpectedAfter.ID():  diag.ArrowUnexpectedAfter.Title(),
		},
	}
}

func (r Rule) Create(ctx *lint.Context) (lint.Handlers, error) {
	valid, err := lint.ValidateOptions(RuleName, r.Meta().Schema, ctx.Options)
	if err != nil {
		return nil, err
	}
	opts := NewOptions(RawFromMap(valid))
	ctx.Logger().Debug("options resolved", zap.Bool("before", opts.Before), zap.Bool("after", opts.After))

	return lint.Handlers{
		ast.KindArrowFunc: func(node ast.Node) error {
			fn, ok := node.(*ast.ArrowFunc)
			if !ok {
				return fmt.Errorf("%w: got %s node", ErrMalformedConstruct, node.Kind())
			}
			return check(ctx, opts, fn)
		},
	}, nil
}

func check(ctx *lint.Context, opts Options, fn *ast.ArrowFunc) error {
	toks, err := Locate(ctx.Source, fn)
	if err != nil {
		return err
	}
	for _, v := range Evaluate(opts, Measure(toks)) {
		report(ctx, toks, v)
	}
	return nil
}
