package parser

import (
	"fmt"

	"arrowlint/internal/diag"
	"arrowlint/internal/token"
)

func closerOf(k token.Kind) token.Kind {
	switch k {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	case token.LBrace:
		return token.RBrace
	case token.TemplateHead:
		return token.TemplateTail
	default:
		return token.Invalid
	}
}

// isCloser also treats the template piece that ends a substitution as a
// closer, so expression bodies stop there.
func isCloser(k token.Kind) bool {
	switch k {
	case token.RParen, token.RBracket, token.RBrace, token.TemplateMiddle, token.TemplateTail:
		return true
	}
	return false
}

// matchDelimiters fills p.match in one forward pass with a stack.
// A closer that does not fit the innermost opener is reported and ignored.
// A template head is paired with its tail; middles only check nesting.
func (p *Parser) matchDelimiters() {
	p.match = make([]int, len(p.toks))
	for i := range p.match {
		p.match[i] = -1
	}
	stack := make([]int, 0, 16)
	for i, tok := range p.toks {
		switch {
		case closerOf(tok.Kind) != token.Invalid:
			stack = append(stack, i)
		case tok.Kind == token.TemplateMiddle:
			if n := len(stack); n > 0 && p.toks[stack[n-1]].Kind == token.TemplateHead {
				continue
			}
			p.err(diag.SynUnbalancedClosing, tok.Span,
				fmt.Sprintf("unexpected %q without matching opener", tok.Text))
		case isCloser(tok.Kind):
			if n := len(stack); n > 0 && closerOf(p.toks[stack[n-1]].Kind) == tok.Kind {
				open := stack[n-1]
				stack = stack[:n-1]
				p.match[open] = i
				p.match[i] = open
				continue
			}
			p.err(diag.SynUnbalancedClosing, tok.Span,
				fmt.Sprintf("unexpected %q without matching opener", tok.Text))
		}
	}
	for _, open := range stack {
		tok := p.toks[open]
		p.err(diag.SynUnclosedDelimiter, tok.Span, fmt.Sprintf("%q is never closed", tok.Text))
	}
}
