package ast

import (
	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

// File is the recognized structure of one source file.
type File struct {
	Span   source.Span
	Source *source.File
	// Tokens is the full significant token stream ending with EOF.
	Tokens []token.Token
	// Arrows lists every arrow construct ordered by start offset.
	Arrows []ArrowID
}

func (f *File) Kind() Kind { return KindFile }

func (f *File) Extent() source.Span { return f.Span }

type Hints struct{ Arrows uint }

// Builder owns the node arenas of a file.
type Builder struct {
	Arrows *Arrows
}

func NewBuilder(hints Hints) *Builder {
	if hints.Arrows == 0 {
		hints.Arrows = 1 << 6
	}
	return &Builder{
		Arrows: NewArrows(hints.Arrows),
	}
}

func (b *Builder) NewArrow(fn ArrowFunc) ArrowID {
	return b.Arrows.New(fn)
}

// Walk visits the file and then each arrow in source order.
// It stops at the first error.
func (b *Builder) Walk(f *File, visit func(Node) error) error {
	if err := visit(f); err != nil {
		return err
	}
	for _, id := range f.Arrows {
		if err := visit(b.Arrows.Get(id)); err != nil {
			return err
		}
	}
	return nil
}
