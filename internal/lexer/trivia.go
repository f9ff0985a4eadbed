package lexer

import (
	"unicode"

	"arrowlint/internal/diag"
	"arrowlint/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token.
//   - runs of ' ', '\t', '\v', '\f' and Unicode spaces coalesce into one TriviaSpace
//   - runs of '\n' and '\r' coalesce into one TriviaNewline
//   - //... up to the line end -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (not nested, as in JS)
//   - #! at offset 0 -> TriviaHashbang
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	if lx.cursor.Off == 0 {
		lx.scanHashbang()
	}
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if isSpaceByte(b) || lx.atUnicodeSpace() {
			for !lx.cursor.EOF() {
				if isSpaceByte(lx.cursor.Peek()) {
					lx.cursor.Bump()
					continue
				}
				if lx.atUnicodeSpace() {
					lx.bumpRune()
					continue
				}
				break
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' || b == '\r' {
			for lx.cursor.Peek() == '\n' || lx.cursor.Peek() == '\r' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '/' && lx.scanCommentIntoHold() {
			continue
		}

		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: lx.text(sp),
	})
}

func (lx *Lexer) scanHashbang() {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '#' || b1 != '!' {
		return
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '\r' {
		lx.cursor.Bump()
	}
	lx.pushTrivia(token.TriviaHashbang, start)
}

// scanCommentIntoHold consumes // and /* */ comments.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	switch lx.cursor.Peek() {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '\r' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaLineComment, start)
		return true

	case '*':
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		}
		lx.pushTrivia(token.TriviaBlockComment, start)
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f'
}

func (lx *Lexer) atUnicodeSpace() bool {
	if lx.cursor.Peek() < utf8RuneSelf {
		return false
	}
	r, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}
