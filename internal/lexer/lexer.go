package lexer

import (
	"fmt"

	"arrowlint/internal/diag"
	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // pending leading trivia
	prev   token.Kind     // kind of the last significant token, Invalid at start
	subst  []substitution // open ${...} substitutions, innermost last
}

// substitution tracks one open ${...}: where its template started and how
// many '{' are open inside it.
type substitution struct {
	start uint32
	depth int
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		prev:   token.Invalid,
	}
}

// Next returns the next significant token with its Leading trivia.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		lx.closeOpenTemplates()
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch == '\\':
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case ch == '#':
		tok = lx.scanPrivateIdent()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString(ch)

	case ch == '`':
		tok = lx.scanTemplatePart(false)

	case ch == '}' && lx.inSubstitutionTop():
		tok = lx.scanTemplatePart(true)

	case ch == '/' && lx.regexAllowed():
		tok = lx.scanRegex()

	default:
		tok = lx.scanOperatorOrPunct()
		lx.trackBrace(tok.Kind)
	}

	if tok.Span.Len() > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, tok.Span,
			fmt.Sprintf("token is longer than %d bytes", maxTokenLength))
		lx.cursor.SkipToEnd()
		tok.Kind = token.Invalid
		tok.Text = ""
	}

	tok.Leading = lx.hold
	lx.hold = nil
	lx.prev = tok.Kind
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All drains the lexer and returns every token including the trailing EOF.
func (lx *Lexer) All() []token.Token {
	tokens := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Tokenize is a convenience wrapper around New(...).All().
func Tokenize(file *source.File, opts Options) []token.Token {
	return New(file, opts).All()
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

// regexAllowed decides whether '/' starts a regular expression literal.
// After an operand it is a division; everywhere else it opens a regex.
func (lx *Lexer) regexAllowed() bool {
	if b := lx.cursor.PeekAt(1); b == '/' || b == '*' {
		return false
	}
	switch lx.prev {
	case token.Ident, token.PrivateIdent, token.NumberLit, token.StringLit,
		token.TemplateLit, token.TemplateTail, token.RegexLit, token.RParen, token.RBracket, token.RBrace,
		token.KwThis, token.KwSuper, token.KwTrue, token.KwFalse, token.KwNull,
		token.PlusPlus, token.MinusMinus:
		return false
	}
	return true
}
