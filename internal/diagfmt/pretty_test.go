package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"arrowlint/internal/diag"
	"arrowlint/internal/source"
)

func arrowDiag(fileID source.FileID) diag.Diagnostic {
	d := diag.New(diag.SevWarning, diag.ArrowExpectedBefore,
		source.Span{File: fileID, Start: 10, End: 11}, "Missing space before =>.")
	d.Rule = "arrow-spacing"
	d.Fixes = []diag.Fix{{
		ID:          "arrow-spacing/expectedBefore@11",
		Title:       "Insert space before =>",
		IsPreferred: true,
		Edits: []diag.TextEdit{{
			Span:    source.Span{File: fileID, Start: 11, End: 11},
			NewText: " ",
		}},
	}}
	return d
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.js", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 8, End: 28}, "Unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.js"},
		{"Basename only", PathModeBasename, "test.js"},
		{"Auto", PathModeAuto, "test.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			for _, want := range []string{"ERROR", "LEX1002", "Unterminated string"} {
				if !strings.Contains(output, want) {
					t.Errorf("Expected %q in output, got:\n%s", want, output)
				}
			}
		})
	}
}

func TestPrettySnippetAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.js", []byte("// head\nconst f = x=>x;\n// tail\n"))

	bag := diag.NewBag(4)
	d := diag.New(diag.SevWarning, diag.ArrowExpectedBefore,
		source.Span{File: fileID, Start: 18, End: 19}, "Missing space before =>.")
	d.Rule = "arrow-spacing"
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename})

	want := strings.Join([]string{
		"a.js:2:11: WARNING expectedBefore: Missing space before =>. [arrow-spacing]",
		"1 | // head",
		"2 | const f = x=>x;",
		"  |           ^",
		"3 | // tail",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("pretty output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyUnderlineUsesDisplayWidth(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("w.js", []byte("f('世界')"))

	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevInfo, diag.LexInfo, source.Span{File: fileID, Start: 2, End: 10}, "wide"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	if want := "  |   ^~~~~~"; lines[2] != want {
		t.Fatalf("underline = %q, want %q", lines[2], want)
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte("const f = x=>x;\n"))

	d := arrowDiag(fileID)
	d = d.WithNote(source.Span{File: fileID, Start: 11, End: 13}, "arrow is here")
	bag := diag.NewBag(4)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{
		PathMode:    PathModeBasename,
		ShowNotes:   true,
		ShowFixes:   true,
		ShowPreview: true,
	})
	output := buf.String()

	for _, want := range []string{
		"note: test.js:1:12: arrow is here",
		"fix #1: Insert space before =>",
		"id=arrow-spacing/expectedBefore@11",
		"preferred",
		`insert test.js:1:12 apply=" "`,
		"preview:",
		"- const f = x=>x;",
		"+ const f = x =>x;",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.js", []byte("x=>x"))
	bag := diag.NewBag(1)
	bag.Add(arrowDiag(fileID))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output contains escape sequences")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output lacks escape sequences")
	}
}

func TestFixPreviewDeletion(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("p.js", []byte("a\nx  /* c */ => x\nb\n"))
	edit := diag.TextEdit{Span: source.Span{File: fileID, Start: 3, End: 13}, OldText: "  /* c */ "}

	preview, err := buildFixEditPreview(fs, edit)
	if err != nil {
		t.Fatal(err)
	}
	if len(preview.before) != 1 || preview.before[0] != "x  /* c */ => x" {
		t.Errorf("before = %q", preview.before)
	}
	if len(preview.after) != 1 || preview.after[0] != "x=> x" {
		t.Errorf("after = %q", preview.after)
	}

	_, err = buildFixEditPreview(fs, diag.TextEdit{Span: source.Span{File: fileID, Start: 5, End: 99}})
	if err == nil {
		t.Error("expected out-of-range error")
	}
}
