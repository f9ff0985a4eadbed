package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.js", []byte("x => x"), 0)
	id2 := fs.Add("test.js", []byte("x=>x"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}
	latest, ok := fs.GetLatest("test.js")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latest, ok, id2)
	}
	if string(fs.Get(id1).Content) != "x => x" {
		t.Fatalf("old version must stay accessible")
	}
	if fs.Get(FileID(99)) != nil {
		t.Fatalf("unknown id must return nil")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.js", []byte("a\nbb => c\n\nd"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 2, Col: 1}},
		{5, LineCol{Line: 2, Col: 4}},
		{11, LineCol{Line: 4, Col: 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.js", []byte("one\r\ntwo\nthree")))
	if f.Flags&FileHasCRLF == 0 {
		t.Fatalf("expected FileHasCRLF flag")
	}
	for i, want := range []string{"one", "two", "three", ""} {
		if got := f.GetLine(uint32(i + 1)); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", i+1, got, want)
		}
	}
}

func TestLoadStripsBOMAndKeepsLineEndings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.js")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("f = x=>x\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "f = x=>x\r\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Fatalf("expected FileHadBOM flag")
	}
	if got := RestoreBOM(f, f.Content); string(got) != string(raw) {
		t.Fatalf("RestoreBOM = %q, want %q", got, raw)
	}
}

func TestRelativePath(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "base")
	target := filepath.Join(base, "nested", "file.js")

	got, err := RelativePath(target, base)
	if err != nil {
		t.Fatalf("RelativePath: %v", err)
	}
	if got != "nested/file.js" {
		t.Fatalf("got %q", got)
	}

	outside := filepath.Join(tmp, "other", "file.js")
	got, err = RelativePath(outside, base)
	if err != nil {
		t.Fatalf("RelativePath: %v", err)
	}
	if got != normalizePath(outside) {
		t.Fatalf("expected absolute fallback, got %q", got)
	}
}
