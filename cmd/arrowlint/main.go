package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"arrowlint/internal/logx"
	"arrowlint/internal/version"
)

// errProblems signals that error-severity diagnostics remain; it maps to exit code 1
// without printing anything further.
var errProblems = errors.New("problems found")

var rootCmd = &cobra.Command{
	Use:   "arrowlint",
	Short: "Arrow function spacing linter",
	Long: `arrowlint checks the whitespace around the => token of arrow functions
in JavaScript and TypeScript sources and fixes it in place.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		_ = logx.FromContext(cmd.Context()).Sync()
	},
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics per file (0 = from config)")
	rootCmd.PersistentFlags().String("config", "", "path to arrowlint.toml (default: search upwards)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error|off); default $"+logx.EnvLevel+" or warn")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console|json)")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers (0=auto)")
}

// main executes the root command. Any error exits with status 1; errProblems
// does so silently because the diagnostics were already printed.
func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errProblems) {
			fmt.Fprintf(os.Stderr, "arrowlint: %v\n", err)
		}
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	levelFlag, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	formatFlag, err := cmd.Root().PersistentFlags().GetString("log-format")
	if err != nil {
		return fmt.Errorf("failed to get log-format flag: %w", err)
	}
	level, err := logx.ParseLevel(logx.LevelFromEnv(levelFlag))
	if err != nil {
		return err
	}
	format, err := logx.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	logger := logx.New(os.Stderr, level, format)
	cmd.SetContext(logx.WithLogger(cmd.Context(), logger))
	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// useColor resolves --color for output written to f.
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "auto", "":
		return isTerminal(f) && os.Getenv("NO_COLOR") == "", nil
	}
	return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
}

// terminalWidth returns the width of f, or 0 when unknown.
func terminalWidth(f *os.File) int {
	if !isTerminal(f) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
	if err != nil {
		return 0
	}
	return w
}
