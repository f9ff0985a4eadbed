package arrowspacing

import (
	"errors"
	"fmt"

	"arrowlint/internal/ast"
	"arrowlint/internal/lint"
	"arrowlint/internal/token"
)

// ErrMalformedConstruct reports an arrow whose tokens cannot be located.
// It aborts linting of the file instead of producing a diagnostic.
var ErrMalformedConstruct = errors.New("malformed arrow construct")

// Tokens are the arrow and its nearest significant neighbors.
type Tokens struct {
	Before token.Token
	Arrow  token.Token
	After  token.Token
}

func isArrowToken(tok token.Token) bool {
	return tok.IsArrow()
}

// Locate finds the "=>" preceding the body of fn and the tokens around it.
func Locate(sc *lint.SourceCode, fn *ast.ArrowFunc) (Tokens, error) {
	if _, ok := sc.Token(fn.Body.FirstToken); !ok || fn.Body.FirstToken == ast.NoToken {
		return Tokens{}, fmt.Errorf("%w: no body for arrow at %s", ErrMalformedConstruct, fn.Span)
	}

	arrowIdx, ok := sc.TokenBefore(fn.Body.FirstToken, isArrowToken)
	if !ok || sc.Tokens[arrowIdx].Span.Start < fn.Span.Start {
		return Tokens{}, fmt.Errorf("%w: no \"=>\" before body at %s", ErrMalformedConstruct, fn.Body.Span)
	}
	beforeIdx, ok := sc.TokenBefore(arrowIdx, nil)
	if !ok {
		return Tokens{}, fmt.Errorf("%w: nothing precedes \"=>\" at %s", ErrMalformedConstruct, sc.Tokens[arrowIdx].Span)
	}
	afterIdx, ok := sc.TokenAfter(arrowIdx, nil)
	if !ok {
		return Tokens{}, fmt.Errorf("%w: nothing follows \"=>\" at %s", ErrMalformedConstruct, sc.Tokens[arrowIdx].Span)
	}

	toks := Tokens{
		Before: sc.Tokens[beforeIdx],
		Arrow:  sc.Tokens[arrowIdx],
		After:  sc.Tokens[afterIdx],
	}
	if toks.Before.Span.End > toks.Arrow.Span.Start || toks.Arrow.Span.End > toks.After.Span.Start {
		return Tokens{}, fmt.Errorf("%w: tokens around %s overlap", ErrMalformedConstruct, toks.Arrow.Span)
	}
	return toks, nil
}
