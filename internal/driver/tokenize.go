package driver

import (
	"arrowlint/internal/ast"
	"arrowlint/internal/diag"
	"arrowlint/internal/lexer"
	"arrowlint/internal/parser"
	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and returns its full token stream with lexer diagnostics.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource tokenizes in-memory content.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeLoaded(fs, addSource(fs, name, content), maxDiagnostics)
}

func tokenizeLoaded(fs *source.FileSet, id source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(id)
	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *ast.File
	Arenas  *ast.Builder
	Bag     *diag.Bag
}

// Parse loads path and recognizes its arrow constructs without running rules.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, id, maxDiagnostics), nil
}

// ParseSource parses in-memory content.
func ParseSource(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	return parseLoaded(fs, addSource(fs, name, content), maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, id source.FileID, maxDiagnostics int) *ParseResult {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	arenas := ast.NewBuilder(ast.Hints{})
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})
	res := parser.ParseFile(fs, lx, arenas, parser.Options{Reporter: reporter})
	bag.Sort()
	return &ParseResult{FileSet: fs, File: res.File, Arenas: arenas, Bag: bag}
}
