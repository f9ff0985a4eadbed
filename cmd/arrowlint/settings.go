package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"arrowlint/internal/config"
	"arrowlint/internal/driver"
	"arrowlint/internal/logx"
	"arrowlint/internal/observ"
	"arrowlint/internal/rules"
)

// settings is everything check and fix need from flags and configuration.
type settings struct {
	cfg     *config.Config
	opts    driver.Options
	timer   *observ.Timer
	quiet   bool
	timings bool
}

// loadSettings resolves the configuration for the first target and builds
// driver options from it and the global flags.
func loadSettings(cmd *cobra.Command, targets []string, useCache bool) (*settings, error) {
	flags := cmd.Root().PersistentFlags()
	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	startDir := "."
	if len(targets) > 0 {
		startDir = targets[0]
	}
	cfg, err := config.Resolve(configPath, startDir)
	if err != nil {
		return nil, err
	}
	configured, err := cfg.RuleConfigs(rules.Builtin())
	if err != nil {
		return nil, err
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = cfg.Lint.MaxDiagnostics
	}

	s := &settings{
		cfg:     cfg,
		quiet:   quiet,
		timings: timings,
		opts: driver.Options{
			Rules: configured,
			Matcher: driver.Matcher{
				Root:    cfg.Root,
				Include: cfg.Lint.Include,
				Exclude: cfg.Lint.Exclude,
			},
			MaxDiagnostics: maxDiagnostics,
			Jobs:           jobs,
		},
	}
	if err := s.opts.Matcher.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Path, err)
	}
	if timings {
		s.timer = observ.NewTimer()
		s.opts.Timer = s.timer
	}
	if useCache {
		s.opts.Cache = openCache(cmd.Context())
	}

	logx.FromContext(cmd.Context()).Debug("configuration resolved",
		zap.String("config", cfg.Path),
		zap.String("root", cfg.Root),
		zap.Int("rules", len(configured)),
		zap.Int("max_diagnostics", maxDiagnostics))
	return s, nil
}

// openCache returns the user result cache, or nil when it is unavailable.
func openCache(ctx context.Context) *driver.ResultCache {
	cache, err := driver.OpenResultCache("arrowlint")
	if err != nil {
		logx.FromContext(ctx).Warn("result cache disabled", zap.Error(err))
		return nil
	}
	return cache
}

func (s *settings) printTimings() {
	if s.timer == nil {
		return
	}
	fmt.Fprint(os.Stderr, s.timer.Summary())
}
