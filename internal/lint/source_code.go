package lint

import (
	"sort"

	"arrowlint/internal/ast"
	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

// TokenFilter selects tokens during neighbor searches.
type TokenFilter func(tok token.Token) bool

// SourceCode gives rules read access to the text and the significant tokens
// of a file. Trivia is only reachable through token.Leading.
type SourceCode struct {
	File   *source.File
	Tokens []token.Token
}

func NewSourceCode(f *ast.File) *SourceCode {
	return &SourceCode{File: f.Source, Tokens: f.Tokens}
}

// Token returns the token at index i; ok is false out of range.
func (sc *SourceCode) Token(i int) (token.Token, bool) {
	if i < 0 || i >= len(sc.Tokens) {
		return token.Token{}, false
	}
	return sc.Tokens[i], true
}

// IndexAt returns the index of the first token starting at or after off.
func (sc *SourceCode) IndexAt(off uint32) int {
	return sort.Search(len(sc.Tokens), func(i int) bool {
		return sc.Tokens[i].Span.Start >= off
	})
}

// TokenBefore returns the nearest token before index i accepted by filter.
// A nil filter accepts every token.
func (sc *SourceCode) TokenBefore(i int, filter TokenFilter) (int, bool) {
	if i > len(sc.Tokens) {
		i = len(sc.Tokens)
	}
	for j := i - 1; j >= 0; j-- {
		if filter == nil || filter(sc.Tokens[j]) {
			return j, true
		}
	}
	return -1, false
}

// TokenAfter returns the nearest token after index i accepted by filter.
// EOF is never returned.
func (sc *SourceCode) TokenAfter(i int, filter TokenFilter) (int, bool) {
	if i < -1 {
		i = -1
	}
	for j := i + 1; j < len(sc.Tokens); j++ {
		tok := sc.Tokens[j]
		if tok.Kind == token.EOF {
			break
		}
		if filter == nil || filter(tok) {
			return j, true
		}
	}
	return -1, false
}

// Text returns the source text covered by span.
func (sc *SourceCode) Text(span source.Span) string {
	if sc.File == nil {
		return ""
	}
	return sc.File.Text(span)
}
