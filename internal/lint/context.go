package lint

import (
	"context"

	"go.uber.org/zap"

	"arrowlint/internal/diag"
	"arrowlint/internal/logx"
	"arrowlint/internal/source"
)

// RuleConfig is the per-rule part of the user configuration.
type RuleConfig struct {
	Enabled  bool
	Severity diag.Severity
	// Options holds validated option values keyed by name.
	Options map[string]any
}

// Context is handed to Rule.Create for one file.
type Context struct {
	RuleName   string
	Source     *SourceCode
	Severity   diag.Severity
	Options    map[string]any
	reporter   diag.Reporter
	ctx        context.Context
	reportsCnt int
}

// Report starts a diagnostic stamped with the rule name and configured severity.
func (c *Context) Report(code diag.Code, anchor source.Span, msg string) *diag.ReportBuilder {
	c.reportsCnt++
	return diag.NewReportBuilder(c.reporter, c.Severity, code, anchor, msg).WithRule(c.RuleName)
}

// Reports counts diagnostics started through this context.
func (c *Context) Reports() int {
	return c.reportsCnt
}

// Logger returns the request logger named after the rule.
func (c *Context) Logger() *zap.Logger {
	return logx.FromContext(c.ctx).Named(c.RuleName)
}
