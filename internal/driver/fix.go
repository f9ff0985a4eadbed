package driver

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"arrowlint/internal/diag"
	"arrowlint/internal/fix"
	"arrowlint/internal/logx"
	"arrowlint/internal/source"
)

// MaxFixPasses bounds the lint/fix loop.
const MaxFixPasses = 10

// FixOptions configures FixPaths and FixSource.
type FixOptions struct {
	Options
	// DryRun computes fixed contents without writing files.
	DryRun bool
}

// FixReport is the outcome of an iterative fix run.
type FixReport struct {
	Passes  int
	Applied []fix.AppliedFix
	Skipped []fix.SkippedFix
	// Changes is merged by path across passes.
	Changes []fix.FileChange
	// Result is the lint result of the final, fixed contents.
	Result *Result
}

// Content returns the final content of id as it would be written,
// BOM included.
func (r *FixReport) Content(id source.FileID) []byte {
	file := r.Result.FileSet.Get(id)
	if file == nil {
		return nil
	}
	return source.RestoreBOM(file, file.Content)
}

// FixPaths lints paths and applies every safe fix, re-linting until no fix
// applies or MaxFixPasses is reached.
func FixPaths(ctx context.Context, paths []string, opts FixOptions) (*FixReport, error) {
	files, err := CollectFiles(paths, opts.Matcher)
	if err != nil {
		return nil, err
	}
	fs := source.NewFileSetWithBase(opts.Matcher.Root)
	ids, loadErrs := loadAll(fs, files)
	report, err := fixLoop(ctx, fs, ids, opts)
	if report != nil && report.Result != nil {
		report.Result.Files = append(report.Result.Files, loadErrs...)
	}
	return report, err
}

// FixSource fixes in-memory content. Nothing is written; the fixed text is
// available through FixReport.Content(0).
func FixSource(ctx context.Context, name string, content []byte, opts FixOptions) (*FixReport, error) {
	fs := source.NewFileSet()
	id := addSource(fs, name, content)
	return fixLoop(ctx, fs, []source.FileID{id}, opts)
}

func fixLoop(ctx context.Context, fs *source.FileSet, ids []source.FileID, opts FixOptions) (*FixReport, error) {
	log := logx.FromContext(ctx)
	report := &FixReport{}
	changed := make(map[string]int)
	var order []string

	for {
		result, err := lintLoaded(ctx, fs, ids, opts.Options)
		report.Result = result
		if err != nil {
			return report, err
		}
		if report.Passes == MaxFixPasses {
			log.Warn("fix loop did not converge", zap.Int("passes", report.Passes))
			break
		}

		session := fix.NewSession(fs)
		for _, f := range result.Files {
			for _, d := range f.Bag.Items() {
				session.Report(d)
			}
		}
		if session.Len() == 0 {
			break
		}

		idx := opts.Timer.Begin("fix")
		applied, err := session.Apply(fix.ApplyOptions{Mode: fix.ApplyModeAll, DryRun: opts.DryRun})
		opts.Timer.End(idx, fmt.Sprintf("pass %d", report.Passes+1))
		if errors.Is(err, fix.ErrNoFixes) {
			report.Skipped = append(report.Skipped, applied.Skipped...)
			break
		}
		if err != nil {
			return report, err
		}
		report.Passes++
		report.Applied = append(report.Applied, applied.Applied...)
		report.Skipped = append(report.Skipped, applied.Skipped...)
		for _, c := range applied.FileChanges {
			if _, ok := changed[c.Path]; !ok {
				order = append(order, c.Path)
			}
			changed[c.Path] += c.EditCount
		}
		log.Debug("fix pass",
			zap.Int("pass", report.Passes),
			zap.Int("applied", len(applied.Applied)),
			zap.Int("skipped", len(applied.Skipped)))

		fs = reload(fs, applied.Outputs)
	}

	for _, path := range order {
		report.Changes = append(report.Changes, fix.FileChange{
			Path:      path,
			EditCount: changed[path],
			Written:   !opts.DryRun,
		})
	}
	return report, nil
}

// reload builds a FileSet with the same FileIDs where changed files carry
// their new content.
func reload(old *source.FileSet, outputs map[source.FileID][]byte) *source.FileSet {
	fs := source.NewFileSetWithBase(old.BaseDir())
	for i := 0; i < old.Len(); i++ {
		id := source.FileID(i) // #nosec G115 -- bounded by FileSet.Len
		file := old.Get(id)
		content := file.Content
		if out, ok := outputs[id]; ok {
			content = out
		}
		fs.Add(file.Path, content, file.Flags&(source.FileVirtual|source.FileHadBOM))
	}
	return fs
}

// Unfixed returns diagnostics left after the final pass.
func (r *FixReport) Unfixed() []diag.Diagnostic {
	if r.Result == nil {
		return nil
	}
	return r.Result.Diagnostics()
}
