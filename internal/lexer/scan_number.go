package lexer

import (
	"arrowlint/internal/diag"
	"arrowlint/internal/token"
)

// scanNumber handles 0, 123, 1_000, .5, 1.5e-3, 0x.., 0o.., 0b.., legacy 017
// and the bigint suffix 'n'. An identifier character directly after the
// literal is reported as a malformed number.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	digits := func(accept func(byte) bool) {
		for accept(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	radix := false
	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			digits(isHex)
			radix = true
		case 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			digits(func(b byte) bool { return b >= '0' && b <= '7' })
			radix = true
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			digits(func(b byte) bool { return b == '0' || b == '1' })
			radix = true
		}
	}

	if !radix {
		digits(isDec)
		if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
			lx.cursor.Bump()
			digits(isDec)
		}
		if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
			mark := lx.cursor.Mark()
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			if !isDec(lx.cursor.Peek()) {
				lx.cursor.Reset(mark)
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			digits(isDec)
		}
	}

	lx.cursor.Eat('n')

	if b := lx.cursor.Peek(); isIdentStartByte(b) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "identifier starts immediately after numeric literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
}
