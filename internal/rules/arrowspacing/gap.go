package arrowspacing

// Gaps are byte distances between the arrow and its neighbors.
type Gaps struct {
	Before uint32
	After  uint32
}

// Measure computes both gaps. Locate guarantees the tokens are ordered.
func Measure(t Tokens) Gaps {
	return Gaps{
		Before: t.Arrow.Span.Start - t.Before.Span.End,
		After:  t.After.Span.Start - t.Arrow.Span.End,
	}
}
