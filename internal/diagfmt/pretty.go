package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"arrowlint/internal/diag"
	"arrowlint/internal/source"
)

type palette struct {
	err    *color.Color
	warn   *color.Color
	info   *color.Color
	path   *color.Color
	code   *color.Color
	gutter *color.Color
	caret  *color.Color
	note   *color.Color
	fix    *color.Color
	added  *color.Color
	remove *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		path:   color.New(color.Bold),
		code:   color.New(color.FgMagenta),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
		fix:    color.New(color.FgGreen),
		added:  color.New(color.FgGreen),
		remove: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.code, p.gutter, p.caret, p.note, p.fix, p.added, p.remove} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders diagnostics for humans. bag is expected to be sorted.
// Each diagnostic is printed as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message> [rule]
//
// followed by the source line with a ^~~ underline of the primary span,
// then notes and fixes when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s: %s %s: %s",
		pal.path.Sprintf("%s:%d:%d", formatPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message)
	if d.Rule != "" {
		fmt.Fprintf(w, " [%s]", d.Rule)
	}
	fmt.Fprintln(w)

	writeSnippet(w, fs, d.Primary, int(max(opts.Context, 0)), pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			pos, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				pal.note.Sprint("note:"), formatPath(fs, n.Span.File, opts.PathMode), pos.Line, pos.Col, n.Msg)
		}
	}

	if opts.ShowFixes {
		for i, f := range d.Fixes {
			writeFix(w, fs, i+1, f, opts, pal)
		}
	}
}

func writeFix(w io.Writer, fs *source.FileSet, n int, f diag.Fix, opts PrettyOpts, pal palette) {
	meta := []string{f.Applicability.String()}
	if f.ID != "" {
		meta = append([]string{"id=" + f.ID}, meta...)
	}
	if f.IsPreferred {
		meta = append(meta, "preferred")
	}
	fmt.Fprintf(w, "  %s %s (%s)\n", pal.fix.Sprintf("fix #%d:", n), f.Title, strings.Join(meta, ", "))

	for _, e := range f.Edits {
		pos, _ := fs.Resolve(e.Span)
		fmt.Fprintf(w, "    %s %s:%d:%d apply=%q\n",
			e.Kind(), formatPath(fs, e.Span.File, opts.PathMode), pos.Line, pos.Col, e.NewText)
		if !opts.ShowPreview {
			continue
		}
		preview, err := buildFixEditPreview(fs, e)
		if err != nil {
			continue
		}
		fmt.Fprintln(w, "    preview:")
		for _, line := range preview.before {
			fmt.Fprintf(w, "      %s\n", pal.remove.Sprint("- "+line))
		}
		for _, line := range preview.after {
			fmt.Fprintf(w, "      %s\n", pal.added.Sprint("+ "+line))
		}
	}
}

// writeSnippet prints the primary line with context lines and an underline.
func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, context int, pal palette) {
	file := fs.Get(span.File)
	if file == nil || len(file.Content) == 0 {
		return
	}
	start, end := fs.Resolve(span)
	line := int(start.Line)
	first := max(1, line-context)
	last := min(line+context, max(lineCount(file), line))
	width := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := file.GetLine(uint32(ln)) // #nosec G115 -- bounded by lineCount
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width, ln), text)
		if ln != line {
			continue
		}
		col := min(int(start.Col)-1, len(text))
		stop := len(text)
		if end.Line == start.Line {
			stop = min(max(int(end.Col)-1, col), len(text))
		}
		fmt.Fprintf(w, "%s %s%s\n",
			pal.gutter.Sprintf("%*s |", width, ""),
			caretPadding(text[:col]),
			pal.caret.Sprint(underline(runewidth.StringWidth(text[col:stop]))))
	}
}

// caretPadding keeps tabs so the caret lines up with the rendered source.
func caretPadding(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func underline(width int) string {
	if width <= 1 {
		return "^"
	}
	return "^" + strings.Repeat("~", width-1)
}

func lineCount(f *source.File) int {
	n := len(f.LineIdx)
	if len(f.Content) > 0 && f.Content[len(f.Content)-1] != '\n' {
		n++
	}
	return n
}
