package lint

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"arrowlint/internal/ast"
	"arrowlint/internal/diag"
	"arrowlint/internal/logx"
)

// Configured pairs a rule with its user configuration.
type Configured struct {
	Rule   Rule
	Config RuleConfig
}

// Run creates every enabled rule for file and walks its nodes once,
// dispatching each to the handlers registered for its kind. The first
// handler error stops the walk and is returned wrapped with the rule name.
func Run(
	ctx context.Context,
	file *ast.File,
	arenas *ast.Builder,
	rules []Configured,
	reporter diag.Reporter,
) error {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	sc := NewSourceCode(file)
	log := logx.FromContext(ctx)

	type bound struct {
		name     string
		handlers Handlers
	}
	active := make([]bound, 0, len(rules))
	for _, cr := range rules {
		if !cr.Config.Enabled {
			continue
		}
		rc := &Context{
			RuleName: cr.Rule.Name(),
			Source:   sc,
			Severity: cr.Config.Severity,
			Options:  cr.Config.Options,
			reporter: reporter,
			ctx:      ctx,
		}
		handlers, err := cr.Rule.Create(rc)
		if err != nil {
			return fmt.Errorf("rule %s: %w", rc.RuleName, err)
		}
		active = append(active, bound{name: rc.RuleName, handlers: handlers})
	}
	if len(active) == 0 {
		return nil
	}

	visited := 0
	err := arenas.Walk(file, func(node ast.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		visited++
		for _, b := range active {
			h, ok := b.handlers[node.Kind()]
			if !ok {
				continue
			}
			if err := h(node); err != nil {
				return fmt.Errorf("rule %s at %s: %w", b.name, node.Extent(), err)
			}
		}
		return nil
	})
	log.Debug("lint walk finished",
		zap.Int("rules", len(active)),
		zap.Int("nodes", visited),
		zap.Error(err))
	return err
}
