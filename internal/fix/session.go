package fix

import (
	"arrowlint/internal/diag"
	"arrowlint/internal/source"
)

// Session accumulates fixable diagnostics for one lint pass.
// It implements diag.Reporter so it can sit next to the diagnostic bag.
type Session struct {
	fs    *source.FileSet
	diags []diag.Diagnostic
}

func NewSession(fs *source.FileSet) *Session {
	return &Session{fs: fs}
}

// Report keeps d when it carries at least one fix.
func (s *Session) Report(d diag.Diagnostic) {
	if len(d.Fixes) == 0 {
		return
	}
	s.diags = append(s.diags, d)
}

// Len returns the number of pending fixable diagnostics.
func (s *Session) Len() int {
	return len(s.diags)
}

// Apply applies the pending fixes and clears the session.
func (s *Session) Apply(opts ApplyOptions) (*ApplyResult, error) {
	pending := s.diags
	s.diags = nil
	return Apply(s.fs, pending, opts)
}
