package lexer

import (
	"arrowlint/internal/diag"
	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

// scanString scans '...' and "..." literals. Escapes are skipped, not decoded;
// a backslash before a line break continues the literal.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.Peek() == '\r' && lx.cursor.PeekAt(1) == '\n' {
				lx.cursor.Bump()
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' || b == '\r' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanTemplatePart scans template text starting at the opening '`' or, when
// cont is set, at the '}' closing a substitution. It stops after the closing
// '`' or after "${", so substitutions are lexed as ordinary tokens.
func (lx *Lexer) scanTemplatePart(cont bool) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '`' or '}'
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '\\':
			lx.cursor.Bump()
		case '`':
			kind := token.TemplateLit
			if cont {
				kind = token.TemplateTail
				lx.subst = lx.subst[:len(lx.subst)-1]
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		case '$':
			if !lx.cursor.Eat('{') {
				continue
			}
			kind := token.TemplateMiddle
			if !cont {
				kind = token.TemplateHead
				lx.subst = append(lx.subst, substitution{start: uint32(start)})
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if cont {
		sp.Start = lx.subst[len(lx.subst)-1].start
		lx.subst = lx.subst[:len(lx.subst)-1]
	}
	lx.errLex(diag.LexUnterminatedTemplate, sp, "unterminated template literal")
	sp = lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// inSubstitutionTop reports whether a '}' at the cursor closes the innermost
// substitution rather than a brace opened inside it.
func (lx *Lexer) inSubstitutionTop() bool {
	n := len(lx.subst)
	return n > 0 && lx.subst[n-1].depth == 0
}

func (lx *Lexer) trackBrace(k token.Kind) {
	n := len(lx.subst)
	if n == 0 {
		return
	}
	switch k {
	case token.LBrace:
		lx.subst[n-1].depth++
	case token.RBrace:
		lx.subst[n-1].depth--
	}
}

// closeOpenTemplates reports templates whose substitution never closed.
func (lx *Lexer) closeOpenTemplates() {
	if len(lx.subst) == 0 {
		return
	}
	outer := lx.subst[0]
	lx.subst = nil
	sp := source.Span{File: lx.file.ID, Start: outer.start, End: lx.cursor.Off}
	lx.errLex(diag.LexUnterminatedTemplate, sp, "unterminated template literal")
}

// scanRegex scans /body/flags. Character classes may contain '/'.
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	inClass := false
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' || lx.cursor.Peek() == '\r' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedRegex, sp, "unterminated regular expression")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		b := lx.cursor.Bump()
		switch {
		case b == '\\':
			if lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '\r' {
				lx.cursor.Bump()
			}
		case b == '[':
			inClass = true
		case b == ']':
			inClass = false
		case b == '/' && !inClass:
			for lx.consumeIdentPart(false) {
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.RegexLit, Span: sp, Text: lx.text(sp)}
		}
	}
}
