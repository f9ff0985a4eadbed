package parser

import (
	"path/filepath"
	"strings"

	"arrowlint/internal/ast"
	"arrowlint/internal/diag"
	"arrowlint/internal/lexer"
	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File *ast.File
}

// Parser recognizes arrow constructs over a fully lexed token stream.
// It does not build a full syntax tree: delimiters are matched, and every
// "=>" is resolved to its parameter list and body.
type Parser struct {
	fs     *source.FileSet
	src    *source.File
	arenas *ast.Builder
	opts   Options
	toks   []token.Token
	// typed is set for TypeScript sources, where "(x): T => x" annotations
	// take precedence over reading T as a bare parameter.
	typed bool
	// match pairs each opening delimiter with its closer and back; -1 when unmatched.
	match []int
}

// ParseFile drains lx and returns the file with its arrow constructs in
// source order.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	toks := lx.All()
	var src *source.File
	if len(toks) > 0 {
		src = fs.Get(toks[0].Span.File)
	}
	p := Parser{
		fs:     fs,
		src:    src,
		arenas: arenas,
		opts:   opts,
		toks:   toks,
		typed:  src != nil && isTypeScript(src.Path),
	}

	file := &ast.File{
		Source: src,
		Tokens: toks,
	}
	if n := len(toks); n > 0 {
		file.Span = source.Span{File: toks[n-1].Span.File, Start: 0, End: toks[n-1].Span.End}
	}

	p.matchDelimiters()
	file.Arrows = p.parseArrows()
	return Result{File: file}
}

func isTypeScript(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".tsx", ".mts", ".cts":
		return true
	}
	return false
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter == nil || p.opts.Enough() {
		return
	}
	p.opts.CurrentErrors++
	diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
}

// eof is the index of the trailing EOF token.
func (p *Parser) eof() int {
	return len(p.toks) - 1
}
