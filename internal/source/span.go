package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start uint32 // inclusive, in bytes
	End   uint32 // exclusive, in bytes
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
// Spans from different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Between returns the gap between two spans of the same file: [a.End, b.Start).
// If b starts before a ends the result is empty and anchored at a.End.
func Between(a, b Span) Span {
	if b.Start < a.End {
		return Span{File: a.File, Start: a.End, End: a.End}
	}
	return Span{File: a.File, Start: a.End, End: b.Start}
}

// At returns an empty span at the given offset.
func At(file FileID, off uint32) Span {
	return Span{File: file, Start: off, End: off}
}

// Overlaps reports whether two non-empty spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	if s.File != other.File || s.Empty() || other.Empty() {
		return false
	}
	return s.Start < other.End && other.Start < s.End
}

// Contains reports whether off lies within [Start, End).
func (s Span) Contains(off uint32) bool {
	return s.Start <= off && off < s.End
}
