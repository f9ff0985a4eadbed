package arrowspacing

import (
	"fmt"

	"arrowlint/internal/diag"
	"arrowlint/internal/fix"
	"arrowlint/internal/lint"
	"arrowlint/internal/source"
)

// report emits the diagnostic for v with its single-edit fix.
// The anchor is the neighbor on the violated side.
func report(ctx *lint.Context, toks Tokens, v Violation) {
	anchor := toks.Before.Span
	if v.Side == SideAfter {
		anchor = toks.After.Span
	}
	ctx.Report(v.Code, anchor, v.Code.Title()).
		WithFixSuggestion(buildFix(ctx.Source, toks, v)).
		Emit()
}

func buildFix(sc *lint.SourceCode, toks Tokens, v Violation) diag.Fix {
	arrow := toks.Arrow.Span
	id := fix.WithID(fmt.Sprintf("%s/%s@%d", RuleName, v.Code.ID(), arrow.Start))

	switch v.Code {
	case diag.ArrowExpectedBefore:
		return fix.InsertText("insert space before =>", source.At(arrow.File, arrow.Start), " ", "", id, fix.Preferred())
	case diag.ArrowExpectedAfter:
		return fix.InsertText("insert space after =>", source.At(arrow.File, arrow.End), " ", "", id, fix.Preferred())
	case diag.ArrowUnexpectedBefore:
		gap := source.Between(toks.Before.Span, arrow)
		return fix.DeleteSpan("remove space before =>", gap, sc.Text(gap), id, fix.Preferred())
	default:
		gap := source.Between(arrow, toks.After.Span)
		return fix.DeleteSpan("remove space after =>", gap, sc.Text(gap), id, fix.Preferred())
	}
}
