package lexer

import (
	"arrowlint/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies keywords.
// Unicode escapes (\uXXXX, \u{...}) inside identifiers are accepted verbatim.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	if !lx.consumeIdentPart(true) {
		return lx.scanOperatorOrPunct()
	}
	for lx.consumeIdentPart(false) {
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanPrivateIdent scans '#name'. A lone '#' is an unknown character.
func (lx *Lexer) scanPrivateIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	if !lx.consumeIdentPart(true) {
		return lx.unknownChar(start)
	}
	for lx.consumeIdentPart(false) {
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.PrivateIdent, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) consumeIdentPart(first bool) bool {
	if lx.cursor.EOF() {
		return false
	}
	b := lx.cursor.Peek()
	if b == '\\' {
		if lx.cursor.PeekAt(1) != 'u' {
			return false
		}
		lx.cursor.Bump()
		lx.cursor.Bump()
		if lx.cursor.Eat('{') {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '}' {
				lx.cursor.Bump()
			}
			lx.cursor.Eat('}')
			return true
		}
		for i := 0; i < 4 && isHex(lx.cursor.Peek()); i++ {
			lx.cursor.Bump()
		}
		return true
	}
	if b < utf8RuneSelf {
		ok := isIdentContinueByte(b)
		if first {
			ok = isIdentStartByte(b)
		}
		if ok {
			lx.cursor.Bump()
		}
		return ok
	}
	r, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	ok := isIdentContinueRune(r)
	if first {
		ok = isIdentStartRune(r)
	}
	if ok {
		lx.bumpRune()
	}
	return ok
}
