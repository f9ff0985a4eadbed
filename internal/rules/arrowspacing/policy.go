package arrowspacing

import "arrowlint/internal/diag"

// Side is the side of the arrow a violation concerns.
type Side uint8

const (
	SideBefore Side = iota
	SideAfter
)

func (s Side) String() string {
	if s == SideAfter {
		return "after"
	}
	return "before"
}

// Violation is one side whose gap disagrees with the options.
type Violation struct {
	Side Side
	Code diag.Code
}

// Evaluate checks each side on its own. A required side only needs a
// non-zero gap; its width is never normalized.
func Evaluate(opts Options, g Gaps) []Violation {
	var out []Violation
	if v, ok := evaluateSide(SideBefore, opts.Before, g.Before); ok {
		out = append(out, v)
	}
	if v, ok := evaluateSide(SideAfter, opts.After, g.After); ok {
		out = append(out, v)
	}
	return out
}

func evaluateSide(side Side, required bool, gap uint32) (Violation, bool) {
	switch {
	case required && gap == 0:
		return Violation{Side: side, Code: expectedCode(side)}, true
	case !required && gap > 0:
		return Violation{Side: side, Code: unexpectedCode(side)}, true
	}
	return Violation{}, false
}

func expectedCode(s Side) diag.Code {
	if s == SideAfter {
		return diag.ArrowExpectedAfter
	}
	return diag.ArrowExpectedBefore
}

func unexpectedCode(s Side) diag.Code {
	if s == SideAfter {
		return diag.ArrowUnexpectedAfter
	}
	return diag.ArrowUnexpectedBefore
}
