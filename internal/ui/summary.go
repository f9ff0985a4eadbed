// Package ui renders the end-of-run summary shown by check and fix.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	forms := map[string][2]string{
		"%d files":       {"%d file", "%d files"},
		"%d errors":      {"%d error", "%d errors"},
		"%d warnings":    {"%d warning", "%d warnings"},
		"%d arrows":      {"%d arrow function", "%d arrow functions"},
		"%d fixable":     {"%d problem is fixable", "%d problems are fixable"},
		"%d fixes":       {"%d fix applied", "%d fixes applied"},
		"%d passes":      {"in %d pass", "in %d passes"},
		"%d failed":      {"%d file could not be checked", "%d files could not be checked"},
		"%d cached":      {"%d from cache", "%d from cache"},
		"%d diagnostics": {"%d diagnostic", "%d diagnostics"},
	}
	for key, f := range forms {
		_ = message.Set(language.English, key, plural.Selectf(1, "%d", "=1", f[0], "other", f[1]))
	}
}

// Summary describes the outcome of a check or fix run.
type Summary struct {
	Files    int
	Cached   int
	Arrows   int
	Errors   int
	Warnings int
	Fixable  int
	Fixed    int
	Passes   int
	// Failed lists files that were aborted by a load or rule error.
	Failed  []string
	Elapsed time.Duration
}

// Options controls rendering.
type Options struct {
	Color bool
	// Width bounds path lines; 0 means unlimited.
	Width int
}

// Render writes a bordered summary box to w.
func Render(w io.Writer, s Summary, opts Options) error {
	p := message.NewPrinter(language.English)
	r := lipgloss.NewRenderer(w)

	style := func(c string) lipgloss.Style {
		st := r.NewStyle()
		if opts.Color {
			st = st.Foreground(lipgloss.Color(c))
		}
		return st
	}
	okStyle := style("2").Bold(opts.Color)
	errStyle := style("1").Bold(opts.Color)
	warnStyle := style("3")
	dimStyle := style("8")

	var lines []string

	head := p.Sprintf("%d files", s.Files) + " checked"
	if s.Cached > 0 {
		head += dimStyle.Render(" (" + p.Sprintf("%d cached", s.Cached) + ")")
	}
	if s.Elapsed > 0 {
		head += dimStyle.Render(fmt.Sprintf(" in %s", s.Elapsed.Round(time.Millisecond)))
	}
	lines = append(lines, head, p.Sprintf("%d arrows", s.Arrows)+" inspected")

	switch {
	case s.Errors == 0 && s.Warnings == 0 && len(s.Failed) == 0:
		lines = append(lines, okStyle.Render("no problems found"))
	default:
		var parts []string
		if s.Errors > 0 {
			parts = append(parts, errStyle.Render(p.Sprintf("%d errors", s.Errors)))
		}
		if s.Warnings > 0 {
			parts = append(parts, warnStyle.Render(p.Sprintf("%d warnings", s.Warnings)))
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, ", "))
		}
	}

	if s.Fixed > 0 {
		lines = append(lines, okStyle.Render(p.Sprintf("%d fixes", s.Fixed)+" "+p.Sprintf("%d passes", s.Passes)))
	}
	if s.Fixable > 0 {
		lines = append(lines, p.Sprintf("%d fixable", s.Fixable)+" with `arrowlint fix`")
	}
	if len(s.Failed) > 0 {
		lines = append(lines, errStyle.Render(p.Sprintf("%d failed", len(s.Failed))))
		for _, path := range s.Failed {
			lines = append(lines, "  "+truncate(path, opts.Width-6))
		}
	}

	box := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if opts.Color {
		box = box.BorderForeground(lipgloss.Color("8"))
	}
	_, err := fmt.Fprintln(w, box.Render(strings.Join(lines, "\n")))
	return err
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
