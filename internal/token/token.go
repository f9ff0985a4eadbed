package token

import (
	"strings"

	"arrowlint/internal/source"
)

// Token represents a single significant source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, template, regex, boolean or null literal.
// Of a template with substitutions only the head counts, since it starts the literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, TemplateLit, TemplateHead, RegexLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind < kindCount
}

// IsKeyword reports whether the token is a reserved or contextual keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAsync && t.Kind <= KwYield
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsArrow reports whether the token is the arrow-function marker '=>'.
func (t Token) IsArrow() bool { return t.Kind == FatArrow }

// IsIdentLike reports whether the token may act as a binding name in an arrow
// parameter position: identifiers and contextual keywords.
func (t Token) IsIdentLike() bool {
	switch t.Kind {
	case Ident, KwAsync, KwAwait, KwOf, KwLet, KwStatic, KwYield:
		return true
	default:
		return false
	}
}

// HasNewlineBefore reports whether a line break separates the token from the
// previous one, including breaks inside block comments.
func (t Token) HasNewlineBefore() bool {
	for _, tr := range t.Leading {
		switch tr.Kind {
		case TriviaNewline:
			return true
		case TriviaBlockComment:
			if strings.ContainsAny(tr.Text, "\n\r") {
				return true
			}
		}
	}
	return false
}
