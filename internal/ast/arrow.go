package ast

import (
	"arrowlint/internal/source"
)

// ParamsKind tells how the parameter list of an arrow is written.
type ParamsKind uint8

const (
	// ParamsIdent is a single bare parameter: x => x.
	ParamsIdent ParamsKind = iota
	// ParamsParen is a parenthesized list: (a, b) => a.
	ParamsParen
)

// BodyKind tells whether an arrow body is a block or an expression.
type BodyKind uint8

const (
	BodyExpr BodyKind = iota
	BodyBlock
)

func (k BodyKind) String() string {
	if k == BodyBlock {
		return "block"
	}
	return "expression"
}

// Body is the part of an arrow after "=>".
type Body struct {
	Kind BodyKind
	Span source.Span
	// FirstToken indexes File.Tokens; NoToken when the body could not be found.
	FirstToken int
}

// ArrowFunc is one arrow-function construct: [async] params => body.
type ArrowFunc struct {
	ID         ArrowID
	Span       source.Span
	Params     source.Span
	ParamsKind ParamsKind
	// ReturnType covers a ": T" annotation between params and "=>"; empty when absent.
	ReturnType source.Span
	Async      bool
	Body       Body
	// Parent is the innermost arrow whose body contains this one.
	Parent ArrowID
}

func (a *ArrowFunc) Kind() Kind { return KindArrowFunc }

func (a *ArrowFunc) Extent() source.Span { return a.Span }

type Arrows struct {
	Arena *Arena[ArrowFunc]
}

func NewArrows(capHint uint) *Arrows {
	return &Arrows{
		Arena: NewArena[ArrowFunc](capHint),
	}
}

func (a *Arrows) New(fn ArrowFunc) ArrowID {
	id := ArrowID(a.Arena.Allocate(fn))
	a.Arena.Get(uint32(id)).ID = id
	return id
}

func (a *Arrows) Get(id ArrowID) *ArrowFunc {
	return a.Arena.Get(uint32(id))
}

// Depth counts enclosing arrows.
func (a *Arrows) Depth(id ArrowID) int {
	depth := 0
	for fn := a.Get(id); fn != nil && fn.Parent.IsValid(); fn = a.Get(fn.Parent) {
		depth++
	}
	return depth
}
