package diag

import (
	"arrowlint/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit replaces the bytes covered by Span with NewText.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string // expected current text; empty disables the guard
}

// EditKind classifies a TextEdit for output.
type EditKind uint8

const (
	EditInsert EditKind = iota
	EditDelete
	EditReplace
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	default:
		return "replace"
	}
}

// Kind reports whether the edit inserts, deletes or replaces text.
func (e TextEdit) Kind() EditKind {
	switch {
	case e.Span.Empty():
		return EditInsert
	case e.NewText == "":
		return EditDelete
	default:
		return EditReplace
	}
}

// FixKind is a coarse classification of a fix.
type FixKind uint8

const (
	FixKindQuickFix FixKind = iota
	FixKindRefactor
	FixKindRefactorRewrite
	FixKindSourceAction
)

func (k FixKind) String() string {
	switch k {
	case FixKindQuickFix:
		return "quickfix"
	case FixKindRefactor:
		return "refactor"
	case FixKindRefactorRewrite:
		return "refactor.rewrite"
	case FixKindSourceAction:
		return "source"
	}
	return "unknown"
}

// FixApplicability is the confidence level of a fix.
type FixApplicability uint8

const (
	FixApplicabilityAlwaysSafe FixApplicability = iota
	FixApplicabilitySafeWithHeuristics
	FixApplicabilityManualReview
)

func (a FixApplicability) String() string {
	switch a {
	case FixApplicabilityAlwaysSafe:
		return "always-safe"
	case FixApplicabilitySafeWithHeuristics:
		return "safe-with-heuristics"
	case FixApplicabilityManualReview:
		return "manual-review"
	}
	return "unknown"
}

type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	Edits         []TextEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Rule     string
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
