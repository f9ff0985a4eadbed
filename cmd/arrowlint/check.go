package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"arrowlint/internal/diag"
	"arrowlint/internal/diagfmt"
	"arrowlint/internal/driver"
	"arrowlint/internal/source"
	"arrowlint/internal/ui"
	"arrowlint/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Report arrow spacing problems",
	Long: `Check lints the given files and directories (default: the current directory).
Directories are walked and filtered through the include/exclude globs of arrowlint.toml.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack|sarif)")
	checkCmd.Flags().Bool("stdin", false, "read source from stdin")
	checkCmd.Flags().String("stdin-filename", "<stdin>", "display name for --stdin input")
	checkCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	checkCmd.Flags().Bool("clear-cache", false, "drop cached results before linting")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("preview", false, "show before/after lines for every fix")
	checkCmd.Flags().String("path-mode", "auto", "how to print paths (auto|absolute|relative|basename)")
}

type checkFlags struct {
	format    string
	stdin     bool
	stdinName string
	noCache   bool
	clear     bool
	notes     bool
	suggest   bool
	preview   bool
	pathMode  diagfmt.PathMode
}

func readCheckFlags(cmd *cobra.Command) (checkFlags, error) {
	var f checkFlags
	var err error
	fl := cmd.Flags()
	if f.format, err = fl.GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.stdin, err = fl.GetBool("stdin"); err != nil {
		return f, fmt.Errorf("failed to get stdin flag: %w", err)
	}
	if f.stdinName, err = fl.GetString("stdin-filename"); err != nil {
		return f, fmt.Errorf("failed to get stdin-filename flag: %w", err)
	}
	if f.noCache, err = fl.GetBool("no-cache"); err != nil {
		return f, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if f.clear, err = fl.GetBool("clear-cache"); err != nil {
		return f, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if f.notes, err = fl.GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if f.suggest, err = fl.GetBool("suggest"); err != nil {
		return f, fmt.Errorf("failed to get suggest flag: %w", err)
	}
	if f.preview, err = fl.GetBool("preview"); err != nil {
		return f, fmt.Errorf("failed to get preview flag: %w", err)
	}
	modeStr, err := fl.GetString("path-mode")
	if err != nil {
		return f, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	mode, ok := diagfmt.ParsePathMode(modeStr)
	if !ok {
		return f, fmt.Errorf("unknown path mode: %s", modeStr)
	}
	f.pathMode = mode
	switch f.format {
	case "pretty", "json", "msgpack", "sarif":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	return f, nil
}

// runCheck lints the targets, renders the diagnostics and returns errProblems
// when error-severity diagnostics or aborted files remain.
func runCheck(cmd *cobra.Command, args []string) error {
	flags, err := readCheckFlags(cmd)
	if err != nil {
		return err
	}
	if flags.stdin && len(args) > 0 {
		return fmt.Errorf("--stdin cannot be combined with paths")
	}

	s, err := loadSettings(cmd, args, !flags.noCache && !flags.stdin)
	if err != nil {
		return err
	}
	if flags.clear && s.opts.Cache != nil {
		if err := s.opts.Cache.DropAll(); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
	}

	started := time.Now()
	var result *driver.Result
	if flags.stdin {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		result, err = driver.LintSource(cmd.Context(), flags.stdinName, content, s.opts)
		if err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			args = []string{"."}
		}
		result, err = driver.LintPaths(cmd.Context(), args, s.opts)
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(started)

	if err := renderDiagnostics(cmd, result.Bag(), result.FileSet, flags); err != nil {
		return err
	}
	failed := reportFileErrors(result)

	if flags.format == "pretty" && !s.quiet {
		colored, err := useColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		if err := ui.Render(os.Stderr, summarize(result, failed, elapsed), ui.Options{
			Color: colored,
			Width: terminalWidth(os.Stderr),
		}); err != nil {
			return err
		}
	}
	s.printTimings()

	if result.HasErrors() {
		return errProblems
	}
	return nil
}

func renderDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, flags checkFlags) error {
	out := cmd.OutOrStdout()
	showFixes := flags.suggest || flags.preview
	switch flags.format {
	case "pretty":
		colored, err := useColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
		diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{
			Color:       colored,
			Context:     2,
			PathMode:    flags.pathMode,
			ShowNotes:   flags.notes,
			ShowFixes:   showFixes,
			ShowPreview: flags.preview,
		})
		return nil
	case "json", "msgpack":
		opts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         flags.pathMode,
			IncludeNotes:     flags.notes,
			IncludeFixes:     true,
			IncludePreviews:  flags.preview,
		}
		if flags.format == "json" {
			return diagfmt.JSON(out, bag, fs, opts)
		}
		return diagfmt.MsgPack(out, bag, fs, opts)
	case "sarif":
		return diagfmt.Sarif(out, bag, fs, diagfmt.SarifRunMeta{
			ToolName:       "arrowlint",
			ToolVersion:    version.Version,
			InformationURI: "https://eslint.style/rules/js/arrow-spacing",
			InvocationArgs: os.Args[1:],
		})
	}
	return fmt.Errorf("unknown format: %s", flags.format)
}

// reportFileErrors prints files that could not be linted and returns their paths.
func reportFileErrors(result *driver.Result) []string {
	var failed []string
	for _, f := range result.Files {
		if f.Err == nil {
			continue
		}
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", f.Path, f.Err)
		failed = append(failed, f.Path)
	}
	return failed
}

func summarize(result *driver.Result, failed []string, elapsed time.Duration) ui.Summary {
	s := ui.Summary{Failed: failed, Elapsed: elapsed}
	for _, f := range result.Files {
		if f.Err != nil && f.Arrows == 0 && f.Bag.Len() == 0 {
			continue
		}
		s.Files++
		s.Arrows += f.Arrows
		if f.Cached {
			s.Cached++
		}
		s.Errors += f.Bag.CountBySeverity(diag.SevError)
		s.Warnings += f.Bag.CountBySeverity(diag.SevWarning)
		s.Fixable += f.Bag.Fixable()
	}
	return s
}
