package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"arrowlint/internal/ast"
	"arrowlint/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// ArrowOutput is the machine-readable form of one arrow construct.
type ArrowOutput struct {
	Span     source.Span   `json:"span"`
	Params   source.Span   `json:"params"`
	Async    bool          `json:"async,omitempty"`
	Body     string        `json:"body"`
	BodySpan source.Span   `json:"body_span"`
	Children []ArrowOutput `json:"children,omitempty"`
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil {
		return span.String()
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func arrowLabel(fn *ast.ArrowFunc, file *ast.File, fs *source.FileSet) string {
	var sb strings.Builder
	if fn.Async {
		sb.WriteString("async ")
	}
	fmt.Fprintf(&sb, "Arrow %s => <%s body> (span: %s)",
		file.Source.Text(fn.Params), fn.Body.Kind, formatSpan(fn.Span, fs))
	return sb.String()
}

// childrenOf groups arrows under their parent; key 0 holds top-level arrows.
func childrenOf(file *ast.File, arenas *ast.Builder) map[ast.ArrowID][]*ast.ArrowFunc {
	out := make(map[ast.ArrowID][]*ast.ArrowFunc)
	for _, id := range file.Arrows {
		fn := arenas.Arrows.Get(id)
		if fn == nil {
			continue
		}
		out[fn.Parent] = append(out[fn.Parent], fn)
	}
	return out
}

func buildArrowTree(file *ast.File, arenas *ast.Builder, fs *source.FileSet) *treeNode {
	header := "File"
	if fs != nil && file.Source != nil {
		header = file.Source.FormatPath("auto", fs.BaseDir())
	}
	root := &treeNode{label: fmt.Sprintf("%s (span: %s)", header, formatSpan(file.Span, fs))}
	kids := childrenOf(file, arenas)

	var build func(parent ast.ArrowID, node *treeNode)
	build = func(parent ast.ArrowID, node *treeNode) {
		for _, fn := range kids[parent] {
			child := &treeNode{label: arrowLabel(fn, file, fs)}
			build(fn.ID, child)
			node.children = append(node.children, child)
		}
	}
	build(ast.NoArrowID, root)
	return root
}

func writeTree(w io.Writer, node *treeNode, prefix string, last, root bool) {
	switch {
	case root:
		fmt.Fprintln(w, node.label)
	case last:
		fmt.Fprintf(w, "%s└─ %s\n", prefix, node.label)
		prefix += "   "
	default:
		fmt.Fprintf(w, "%s├─ %s\n", prefix, node.label)
		prefix += "│  "
	}
	for i, child := range node.children {
		writeTree(w, child, prefix, i == len(node.children)-1, false)
	}
}

// FormatArrowsPretty prints the arrow constructs of file as a tree nested
// by containment.
func FormatArrowsPretty(w io.Writer, file *ast.File, arenas *ast.Builder, fs *source.FileSet) error {
	if file == nil {
		return fmt.Errorf("file not found")
	}
	writeTree(w, buildArrowTree(file, arenas, fs), "", true, true)
	return nil
}

// FormatArrowsJSON writes the same tree as JSON.
func FormatArrowsJSON(w io.Writer, file *ast.File, arenas *ast.Builder) error {
	if file == nil {
		return fmt.Errorf("file not found")
	}
	kids := childrenOf(file, arenas)
	var build func(parent ast.ArrowID) []ArrowOutput
	build = func(parent ast.ArrowID) []ArrowOutput {
		var out []ArrowOutput
		for _, fn := range kids[parent] {
			out = append(out, ArrowOutput{
				Span:     fn.Span,
				Params:   fn.Params,
				Async:    fn.Async,
				Body:     fn.Body.Kind.String(),
				BodySpan: fn.Body.Span,
				Children: build(fn.ID),
			})
		}
		return out
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(struct {
		Span   source.Span   `json:"span"`
		Arrows []ArrowOutput `json:"arrows"`
	}{Span: file.Span, Arrows: build(ast.NoArrowID)})
}
