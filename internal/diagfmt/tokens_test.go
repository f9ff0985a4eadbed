package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"arrowlint/internal/ast"
	"arrowlint/internal/lexer"
	"arrowlint/internal/parser"
	"arrowlint/internal/source"
)

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.js", []byte("a /* c */ => b"))
	tokens := lexer.Tokenize(fs.Get(id), lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], `"=>" at 1:11-1:13 (leading: Space, BlockComment, Space)`) {
		t.Errorf("arrow line = %q", lines[1])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.js", []byte("x => x"))
	tokens := lexer.Tokenize(fs.Get(id), lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 4 || out[1].Text != "=>" || len(out[1].Leading) != 1 {
		t.Errorf("tokens = %+v", out)
	}
}

func parseForTree(t *testing.T, src string) (*source.FileSet, *ast.File, *ast.Builder) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("tree.js", []byte(src))
	arenas := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lexer.New(fs.Get(id), lexer.Options{}), arenas, parser.Options{})
	return fs, res.File, arenas
}

func TestFormatArrowsPretty(t *testing.T) {
	fs, file, arenas := parseForTree(t, "f(a => async b => { return c => c; }, d => d)")

	var buf bytes.Buffer
	if err := FormatArrowsPretty(&buf, file, arenas, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"tree.js (span: ",
		"├─ Arrow a => <expression body>",
		"│  └─ async Arrow b => <block body>",
		"│     └─ Arrow c => <expression body>",
		"└─ Arrow d => <expression body>",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %d, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if !strings.HasPrefix(lines[i], want[i]) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want[i])
		}
	}
}

func TestFormatArrowsJSON(t *testing.T) {
	_, file, arenas := parseForTree(t, "x => y => (z) => z")

	var buf bytes.Buffer
	if err := FormatArrowsJSON(&buf, file, arenas); err != nil {
		t.Fatal(err)
	}
	var out struct {
		Arrows []ArrowOutput `json:"arrows"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	depth := 0
	for level := out.Arrows; len(level) > 0; level = level[0].Children {
		depth++
	}
	if len(out.Arrows) != 1 || depth != 3 {
		t.Errorf("arrows = %+v", out.Arrows)
	}
}
