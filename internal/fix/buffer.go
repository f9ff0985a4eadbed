package fix

import (
	"errors"
	"fmt"
	"sort"

	"arrowlint/internal/diag"
)

var (
	ErrEditOutOfRange = errors.New("edit span out of range")
	ErrGuardMismatch  = errors.New("existing text does not match expected content")
	ErrOverlap        = errors.New("edits overlap")
)

// ApplyEdits applies edits of one file to content and returns a new buffer.
// Offsets refer to content; edits must not overlap. Insertions at the same
// offset keep their input order.
func ApplyEdits(content []byte, edits []diag.TextEdit) ([]byte, error) {
	sorted := make([]diag.TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})

	out := make([]byte, 0, len(content)+8*len(sorted))
	var cursor uint32
	for i, e := range sorted {
		if e.Span.End < e.Span.Start || int(e.Span.End) > len(content) {
			return nil, fmt.Errorf("%w: %s", ErrEditOutOfRange, e.Span)
		}
		if i > 0 && spansConflict(sorted[i-1], e) {
			return nil, fmt.Errorf("%w: %s and %s", ErrOverlap, sorted[i-1].Span, e.Span)
		}
		if e.OldText != "" && string(content[e.Span.Start:e.Span.End]) != e.OldText {
			return nil, fmt.Errorf("%w at %s", ErrGuardMismatch, e.Span)
		}
		if e.Span.Start < cursor {
			return nil, fmt.Errorf("%w: %s", ErrOverlap, e.Span)
		}
		out = append(out, content[cursor:e.Span.Start]...)
		out = append(out, e.NewText...)
		cursor = e.Span.End
	}
	out = append(out, content[cursor:]...)
	return out, nil
}
