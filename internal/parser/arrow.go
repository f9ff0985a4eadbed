package parser

import (
	"slices"

	"arrowlint/internal/ast"
	"arrowlint/internal/diag"
	"arrowlint/internal/token"
)

// parseArrows resolves every "=>" token. Arrows with no usable parameter
// list or no body are reported and skipped.
func (p *Parser) parseArrows() []ast.ArrowID {
	ids := make([]ast.ArrowID, 0, 8)
	for i, tok := range p.toks {
		if !tok.IsArrow() {
			continue
		}
		fn, ok := p.parseArrowAt(i)
		if !ok {
			continue
		}
		ids = append(ids, p.arenas.NewArrow(fn))
	}

	slices.SortStableFunc(ids, func(a, b ast.ArrowID) int {
		sa, sb := p.arenas.Arrows.Get(a).Span, p.arenas.Arrows.Get(b).Span
		switch {
		case sa.Start < sb.Start:
			return -1
		case sa.Start > sb.Start:
			return 1
		default:
			return 0
		}
	})
	p.linkParents(ids)
	return ids
}

func (p *Parser) parseArrowAt(arrow int) (ast.ArrowFunc, bool) {
	arrowTok := p.toks[arrow]
	if arrow == 0 {
		p.err(diag.SynArrowNoParams, arrowTok.Span, "\"=>\" must follow a parameter list")
		return ast.ArrowFunc{}, false
	}

	fn := ast.ArrowFunc{}
	first := arrow - 1
	prev := p.toks[first]
	annotated := func() bool {
		closeParen, ok := p.returnTypeStart(arrow)
		if !ok {
			return false
		}
		fn.ReturnType = p.toks[closeParen+2].Span.Cover(prev.Span)
		first = p.match[closeParen]
		prev = p.toks[closeParen]
		fn.ParamsKind = ast.ParamsParen
		return true
	}
	switch {
	case prev.Kind == token.RParen && p.match[first] >= 0:
		first = p.match[first]
		fn.ParamsKind = ast.ParamsParen
	case p.typed && annotated():
	case prev.IsIdentLike():
		fn.ParamsKind = ast.ParamsIdent
	case annotated():
	default:
		p.err(diag.SynArrowNoParams, arrowTok.Span, "\"=>\" must follow a parameter list")
		return ast.ArrowFunc{}, false
	}
	fn.Params = p.toks[first].Span.Cover(prev.Span)

	start := first
	if first > 0 && p.toks[first-1].Kind == token.KwAsync && !p.toks[first].HasNewlineBefore() {
		// "async => x" binds a parameter named async; only a preceding async is a modifier.
		fn.Async = true
		start = first - 1
	}

	bodyFirst := arrow + 1
	if bodyFirst >= p.eof() || isCloser(p.toks[bodyFirst].Kind) ||
		p.toks[bodyFirst].Kind == token.Comma || p.toks[bodyFirst].Kind == token.Semicolon {
		p.err(diag.SynArrowNoBody, arrowTok.Span, "\"=>\" must be followed by a body")
		return ast.ArrowFunc{}, false
	}
	bodyLast := p.bodyEnd(bodyFirst)
	fn.Body = ast.Body{
		Kind:       ast.BodyExpr,
		Span:       p.toks[bodyFirst].Span.Cover(p.toks[bodyLast].Span),
		FirstToken: bodyFirst,
	}
	if p.toks[bodyFirst].Kind == token.LBrace {
		fn.Body.Kind = ast.BodyBlock
	}
	fn.Span = p.toks[start].Span.Cover(p.toks[bodyLast].Span)
	return fn, true
}

// returnTypeStart walks back from the arrow over a "(...): T" return type
// annotation and returns the index of the ')' closing the parameter list.
func (p *Parser) returnTypeStart(arrow int) (int, bool) {
	angles := 0
	for i := arrow - 1; i > 0; i-- {
		tok := p.toks[i]
		switch tok.Kind {
		case token.Colon:
			if i+1 == arrow || angles != 0 {
				return 0, false
			}
			if p.toks[i-1].Kind == token.RParen && p.match[i-1] >= 0 {
				return i - 1, true
			}
			return 0, false
		case token.RParen, token.RBracket, token.RBrace:
			if p.match[i] < 0 {
				return 0, false
			}
			i = p.match[i]
		case token.Gt:
			angles++
		case token.Shr:
			angles += 2
		case token.UShr:
			angles += 3
		case token.Lt:
			if angles == 0 {
				return 0, false
			}
			angles--
		case token.Comma:
			if angles == 0 {
				return 0, false
			}
		default:
			if !isTypePart(tok) {
				return 0, false
			}
		}
	}
	return 0, false
}

func isTypePart(tok token.Token) bool {
	if tok.IsIdent() || tok.IsKeyword() || tok.IsLiteral() {
		return true
	}
	switch tok.Kind {
	case token.Pipe, token.Amp, token.Dot, token.Question, token.Minus, token.TemplateTail:
		return true
	}
	return false
}

// bodyEnd returns the index of the last token of the body starting at first.
// Block bodies end at their matching brace. Expression bodies end before a
// depth-0 ',', ';' or closer, or at a line break that starts a new statement.
func (p *Parser) bodyEnd(first int) int {
	if p.toks[first].Kind == token.LBrace {
		if m := p.match[first]; m > first {
			return m
		}
		return p.eof() - 1
	}

	last := first
	for i := first; i < p.eof(); {
		tok := p.toks[i]
		if i > first {
			if tok.Kind == token.Comma || tok.Kind == token.Semicolon || isCloser(tok.Kind) {
				break
			}
			if tok.HasNewlineBefore() && endsOperand(p.toks[i-1].Kind) && startsStatement(tok) {
				break
			}
		}
		if closerOf(tok.Kind) != token.Invalid {
			m := p.match[i]
			if m < 0 {
				return p.eof() - 1
			}
			last = m
			i = m + 1
			continue
		}
		last = i
		i++
	}
	return last
}

func endsOperand(k token.Kind) bool {
	switch k {
	case token.Ident, token.PrivateIdent, token.NumberLit, token.StringLit, token.TemplateLit,
		token.TemplateTail, token.RegexLit, token.RParen, token.RBracket, token.RBrace,
		token.KwThis, token.KwSuper, token.KwTrue, token.KwFalse, token.KwNull,
		token.PlusPlus, token.MinusMinus:
		return true
	}
	return false
}

func startsStatement(tok token.Token) bool {
	if tok.IsIdent() || tok.IsLiteral() {
		return true
	}
	switch tok.Kind {
	case token.KwInstanceof, token.KwIn, token.KwOf:
		return false
	}
	return tok.IsKeyword()
}

// linkParents sets Parent to the innermost arrow whose body contains each arrow.
// ids must be sorted by start offset.
func (p *Parser) linkParents(ids []ast.ArrowID) {
	stack := make([]*ast.ArrowFunc, 0, 4)
	for _, id := range ids {
		fn := p.arenas.Arrows.Get(id)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.Body.Span.Start <= fn.Span.Start && fn.Span.End <= top.Body.Span.End {
				fn.Parent = top.ID
				break
			}
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, fn)
	}
}
