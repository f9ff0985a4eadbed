package diagfmt

import (
	"encoding/json"
	"io"
	"sort"

	"arrowlint/internal/diag"
	"arrowlint/internal/source"
)

// LocationJSON is a span rendered for machine output.
type LocationJSON struct {
	File      string `json:"file" msgpack:"file"`
	StartByte uint32 `json:"start_byte" msgpack:"start_byte"`
	EndByte   uint32 `json:"end_byte" msgpack:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty" msgpack:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty" msgpack:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty" msgpack:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty" msgpack:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message" msgpack:"message"`
	Location LocationJSON `json:"location" msgpack:"location"`
}

type FixEditJSON struct {
	Kind        string       `json:"edit_kind" msgpack:"edit_kind"`
	Location    LocationJSON `json:"location" msgpack:"location"`
	NewText     string       `json:"new_text" msgpack:"new_text"`
	OldText     string       `json:"old_text,omitempty" msgpack:"old_text,omitempty"`
	BeforeLines []string     `json:"before_lines,omitempty" msgpack:"before_lines,omitempty"`
	AfterLines  []string     `json:"after_lines,omitempty" msgpack:"after_lines,omitempty"`
}

type FixJSON struct {
	ID            string        `json:"id,omitempty" msgpack:"id,omitempty"`
	Title         string        `json:"title" msgpack:"title"`
	Kind          string        `json:"kind" msgpack:"kind"`
	Applicability string        `json:"applicability" msgpack:"applicability"`
	IsPreferred   bool          `json:"is_preferred,omitempty" msgpack:"is_preferred,omitempty"`
	Edits         []FixEditJSON `json:"edits,omitempty" msgpack:"edits,omitempty"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity" msgpack:"severity"`
	Code     string       `json:"code" msgpack:"code"`
	Rule     string       `json:"rule,omitempty" msgpack:"rule,omitempty"`
	Message  string       `json:"message" msgpack:"message"`
	Location LocationJSON `json:"location" msgpack:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty" msgpack:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty" msgpack:"fixes,omitempty"`
}

// DiagnosticsOutput is the root of JSON and msgpack output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics" msgpack:"diagnostics"`
	Count       int              `json:"count" msgpack:"count"`
	Dropped     int              `json:"dropped,omitempty" msgpack:"dropped,omitempty"`
}

func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	loc := LocationJSON{
		File:      formatPath(fs, span.File, pathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildDiagnosticsOutput converts bag into the serializable output tree.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, n)
	for _, d := range items[:n] {
		out := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Rule:     d.Rule,
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				out.Notes = append(out.Notes, NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts.PathMode, opts.IncludePositions),
				})
			}
		}
		if opts.IncludeFixes {
			out.Fixes = buildFixes(d.Fixes, fs, opts)
		}
		diagnostics = append(diagnostics, out)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
		Dropped:     bag.Dropped() + len(items) - n,
	}
}

func buildFixes(fixes []diag.Fix, fs *source.FileSet, opts JSONOpts) []FixJSON {
	if len(fixes) == 0 {
		return nil
	}
	sorted := append([]diag.Fix(nil), fixes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		fi, fj := sorted[i], sorted[j]
		if fi.IsPreferred != fj.IsPreferred {
			return fi.IsPreferred
		}
		if fi.Applicability != fj.Applicability {
			return fi.Applicability < fj.Applicability
		}
		return fi.ID < fj.ID
	})

	out := make([]FixJSON, 0, len(sorted))
	for _, f := range sorted {
		fj := FixJSON{
			ID:            f.ID,
			Title:         f.Title,
			Kind:          f.Kind.String(),
			Applicability: f.Applicability.String(),
			IsPreferred:   f.IsPreferred,
			Edits:         make([]FixEditJSON, len(f.Edits)),
		}
		for k, edit := range f.Edits {
			ej := FixEditJSON{
				Kind:     edit.Kind().String(),
				Location: makeLocation(edit.Span, fs, opts.PathMode, opts.IncludePositions),
				NewText:  edit.NewText,
				OldText:  edit.OldText,
			}
			if opts.IncludePreviews {
				if preview, err := buildFixEditPreview(fs, edit); err == nil {
					ej.BeforeLines = preview.before
					ej.AfterLines = preview.after
				}
			}
			fj.Edits[k] = ej
		}
		out = append(out, fj)
	}
	return out
}

// JSON writes diagnostics as indented JSON.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
