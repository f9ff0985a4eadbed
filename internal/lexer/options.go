package lexer

import (
	"arrowlint/internal/diag"
	"arrowlint/internal/source"
)

// maxTokenLength bounds a single token; longer input is reported and the
// lexer fast-forwards to EOF.
const maxTokenLength = 1 << 20

type Options struct {
	Reporter diag.Reporter // may be nil; errors are then dropped but lexing continues
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
