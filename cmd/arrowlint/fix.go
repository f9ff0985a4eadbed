package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"arrowlint/internal/driver"
	"arrowlint/internal/ui"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] [path...]",
	Short: "Apply arrow spacing fixes in place",
	Long: `Fix lints the given files and directories and applies every safe fix,
re-linting until no fix applies. With --stdin the fixed source is written to stdout.`,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("stdin", false, "read source from stdin and print the fixed source")
	fixCmd.Flags().String("stdin-filename", "<stdin>", "display name for --stdin input")
	fixCmd.Flags().Bool("dry-run", false, "compute fixes without writing files")
	fixCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
}

func runFix(cmd *cobra.Command, args []string) error {
	stdin, err := cmd.Flags().GetBool("stdin")
	if err != nil {
		return err
	}
	stdinName, err := cmd.Flags().GetString("stdin-filename")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	if stdin && len(args) > 0 {
		return fmt.Errorf("--stdin cannot be combined with paths")
	}

	s, err := loadSettings(cmd, args, !noCache && !stdin)
	if err != nil {
		return err
	}
	opts := driver.FixOptions{Options: s.opts, DryRun: dryRun}

	started := time.Now()
	var report *driver.FixReport
	if stdin {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		report, err = driver.FixSource(cmd.Context(), stdinName, content, opts)
		if err != nil {
			return fmt.Errorf("fix: %w", err)
		}
		if _, err := cmd.OutOrStdout().Write(report.Content(0)); err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			args = []string{"."}
		}
		report, err = driver.FixPaths(cmd.Context(), args, opts)
		if err != nil {
			return fmt.Errorf("fix: %w", err)
		}
	}
	elapsed := time.Since(started)

	// stdout carries the fixed source in --stdin mode, so the report goes to stderr.
	out := cmd.OutOrStdout()
	if stdin {
		out = os.Stderr
	}
	if !s.quiet {
		if err := printFixReport(out, report, dryRun); err != nil {
			return err
		}
	}
	failed := reportFileErrors(report.Result)

	if !s.quiet {
		colored, err := useColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		summary := summarize(report.Result, failed, elapsed)
		summary.Fixed = len(report.Applied)
		summary.Passes = report.Passes
		if err := ui.Render(os.Stderr, summary, ui.Options{Color: colored, Width: terminalWidth(os.Stderr)}); err != nil {
			return err
		}
	}
	s.printTimings()

	if report.Result.HasErrors() {
		return errProblems
	}
	return nil
}

func printFixReport(out io.Writer, report *driver.FixReport, dryRun bool) error {
	var printErr error
	if len(report.Changes) > 0 {
		header := "Updated files:"
		if dryRun {
			header = "Would update files:"
		}
		if _, printErr = fmt.Fprintln(out, header); printErr != nil {
			return printErr
		}
		for _, change := range report.Changes {
			if _, printErr = fmt.Fprintf(out, "  %s (%d edits)\n", change.Path, change.EditCount); printErr != nil {
				return printErr
			}
		}
	}

	if len(report.Skipped) > 0 {
		if _, printErr = fmt.Fprintln(out, "Skipped fixes:"); printErr != nil {
			return printErr
		}
		for _, skip := range report.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if _, printErr = fmt.Fprintf(out, "  %s [%s]: %s\n", skip.Title, id, skip.Reason); printErr != nil {
				return printErr
			}
		}
	}

	if len(report.Applied) == 0 {
		_, printErr = fmt.Fprintln(out, "No applicable fixes found.")
	}
	return printErr
}
