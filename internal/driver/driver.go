// Package driver runs the lint pipeline over files, directories and stdin.
package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"arrowlint/internal/ast"
	"arrowlint/internal/diag"
	"arrowlint/internal/lexer"
	"arrowlint/internal/lint"
	"arrowlint/internal/logx"
	"arrowlint/internal/observ"
	"arrowlint/internal/parser"
	"arrowlint/internal/source"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options configures one driver run.
type Options struct {
	Rules          []lint.Configured
	Matcher        Matcher
	MaxDiagnostics int
	// Jobs bounds concurrent files; <= 0 means GOMAXPROCS.
	Jobs  int
	Cache *ResultCache
	Timer *observ.Timer
}

// FileResult is the outcome for one file.
type FileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Arrows int
	Cached bool
	// Err is a load failure or a rule failure that aborted the file, such
	// as a malformed construct.
	Err error
}

// Result holds every file of a run. FileIDs refer to FileSet.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
}

// HasErrors reports error diagnostics or aborted files.
func (r *Result) HasErrors() bool {
	for _, f := range r.Files {
		if f.Err != nil || f.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Bag merges every file's diagnostics into one sorted bag for rendering.
func (r *Result) Bag() *diag.Bag {
	bag := diag.NewBag(0)
	for _, f := range r.Files {
		bag.Merge(f.Bag)
	}
	bag.Sort()
	return bag
}

// Diagnostics returns all diagnostics in file order.
func (r *Result) Diagnostics() []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, f := range r.Files {
		out = append(out, f.Bag.Items()...)
	}
	return out
}

// LintFile runs lexer, parser and rules over one loaded file.
func LintFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) FileResult {
	file := fs.Get(id)
	res := FileResult{Path: file.Path, FileID: id, Bag: diag.NewBag(opts.MaxDiagnostics)}
	log := logx.FromContext(ctx).With(zap.String("file", file.Path))

	fingerprint := ""
	if opts.Cache != nil {
		fingerprint = RulesFingerprint(opts.Rules, opts.MaxDiagnostics)
		var cached CachedResult
		ok, err := opts.Cache.Get(CacheKey(file, fingerprint), &cached)
		if err != nil {
			log.Warn("cache read failed", zap.Error(err))
		}
		if ok {
			for _, d := range cached.Diagnostics {
				res.Bag.Add(rebind(d, id))
			}
			res.Arrows = cached.Arrows
			res.Cached = true
			log.Debug("cache hit", zap.Int("diagnostics", res.Bag.Len()))
			return res
		}
	}

	reporter := diag.BagReporter{Bag: res.Bag}
	start := time.Now()
	arenas := ast.NewBuilder(ast.Hints{})
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	parsed := parser.ParseFile(fs, lx, arenas, parser.Options{Reporter: reporter})
	opts.Timer.Add("parse", time.Since(start))
	res.Arrows = len(parsed.File.Arrows)

	start = time.Now()
	if err := lint.Run(ctx, parsed.File, arenas, opts.Rules, reporter); err != nil {
		res.Err = err
		log.Debug("lint aborted", zap.Error(err))
		return res
	}
	opts.Timer.Add("rules", time.Since(start))

	res.Bag.Sort()
	res.Bag.Dedup()
	log.Debug("file linted",
		zap.Int("tokens", len(parsed.File.Tokens)),
		zap.Int("arrows", res.Arrows),
		zap.Int("diagnostics", res.Bag.Len()))

	if opts.Cache != nil {
		payload := &CachedResult{Arrows: res.Arrows, Diagnostics: res.Bag.Items()}
		if err := opts.Cache.Put(CacheKey(file, fingerprint), payload); err != nil {
			log.Warn("cache write failed", zap.Error(err))
		}
	}
	return res
}

// LintPaths collects files under paths, loads them and lints them in parallel.
func LintPaths(ctx context.Context, paths []string, opts Options) (*Result, error) {
	idx := opts.Timer.Begin("collect")
	files, err := CollectFiles(paths, opts.Matcher)
	opts.Timer.End(idx, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return nil, err
	}

	fs := source.NewFileSetWithBase(opts.Matcher.Root)
	ids, loadErrs := loadAll(fs, files)
	res, err := lintLoaded(ctx, fs, ids, opts)
	if res != nil {
		res.Files = append(res.Files, loadErrs...)
	}
	return res, err
}

// LintSource lints in-memory content such as stdin under a display name.
func LintSource(ctx context.Context, name string, content []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	return lintLoaded(ctx, fs, []source.FileID{addSource(fs, name, content)}, opts)
}

// addSource adds stdin-like content as a virtual file, stripping a BOM the
// same way FileSet.Load does.
func addSource(fs *source.FileSet, name string, content []byte) source.FileID {
	flags := source.FileVirtual
	if rest, ok := bytes.CutPrefix(content, utf8BOM); ok {
		content = rest
		flags |= source.FileHadBOM
	}
	return fs.Add(name, content, flags)
}

// loadAll reads files into fs. Unreadable files become results with Err set
// and no FileID.
func loadAll(fs *source.FileSet, files []string) ([]source.FileID, []FileResult) {
	ids := make([]source.FileID, 0, len(files))
	var failed []FileResult
	for _, path := range files {
		id, err := fs.Load(path)
		if err != nil {
			failed = append(failed, FileResult{Path: path, Bag: diag.NewBag(1), Err: fmt.Errorf("load %s: %w", path, err)})
			continue
		}
		ids = append(ids, id)
	}
	return ids, failed
}

// lintLoaded lints already loaded files. The FileSet is read-only while
// workers run; every worker writes only its own result slot.
func lintLoaded(ctx context.Context, fs *source.FileSet, ids []source.FileID, opts Options) (*Result, error) {
	result := &Result{FileSet: fs, Files: make([]FileResult, len(ids))}
	if len(ids) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	idx := opts.Timer.Begin("lint")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(ids)))
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result.Files[i] = LintFile(gctx, fs, id, opts)
			if errors.Is(result.Files[i].Err, context.Canceled) {
				return result.Files[i].Err
			}
			return nil
		})
	}
	err := g.Wait()
	opts.Timer.End(idx, fmt.Sprintf("%d files, %d jobs", len(ids), jobs))
	return result, err
}
