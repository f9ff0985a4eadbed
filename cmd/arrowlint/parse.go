package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"arrowlint/internal/diagfmt"
	"arrowlint/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.js",
	Short: "Print the arrow functions recognized in a source file",
	Long:  `Parse prints the arrow functions of a file as a tree nested by containment. Use "-" to read stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	var result *driver.ParseResult
	if args[0] == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		result = driver.ParseSource("<stdin>", content, maxDiagnostics)
	} else {
		result, err = driver.Parse(args[0], maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
	}

	if result.Bag.Len() > 0 {
		colored, err := useColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: colored, Context: 2})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatArrowsPretty(cmd.OutOrStdout(), result.File, result.Arenas, result.FileSet)
	case "json":
		return diagfmt.FormatArrowsJSON(cmd.OutOrStdout(), result.File, result.Arenas)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
