package ast

import (
	"errors"
	"testing"

	"arrowlint/internal/source"
)

func TestArenaIDsAreOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil || a.Get(1) != nil {
		t.Fatalf("empty arena must return nil")
	}
	id := a.Allocate(7)
	if id != 1 || *a.Get(id) != 7 || a.Len() != 1 {
		t.Fatalf("Allocate/Get mismatch: id=%d", id)
	}
}

func TestArrowDepthAndWalk(t *testing.T) {
	b := NewBuilder(Hints{})
	outer := b.NewArrow(ArrowFunc{Span: source.Span{Start: 0, End: 11}})
	inner := b.NewArrow(ArrowFunc{Span: source.Span{Start: 5, End: 11}, Parent: outer})
	if b.Arrows.Get(inner).ID != inner {
		t.Fatalf("ID not stored on the node")
	}
	if d := b.Arrows.Depth(inner); d != 1 {
		t.Fatalf("depth = %d, want 1", d)
	}
	if d := b.Arrows.Depth(outer); d != 0 {
		t.Fatalf("depth = %d, want 0", d)
	}

	f := &File{Arrows: []ArrowID{outer, inner}}
	var kinds []Kind
	err := b.Walk(f, func(n Node) error {
		kinds = append(kinds, n.Kind())
		return nil
	})
	if err != nil || len(kinds) != 3 || kinds[0] != KindFile || kinds[2] != KindArrowFunc {
		t.Fatalf("walk = %v, %v", kinds, err)
	}

	stop := errors.New("stop")
	calls := 0
	err = b.Walk(f, func(n Node) error {
		calls++
		if n.Kind() == KindArrowFunc {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || calls != 2 {
		t.Fatalf("walk must stop at first error: calls=%d err=%v", calls, err)
	}
}
