package ast

import "arrowlint/internal/source"

// Kind selects the handler a rule registers for a node.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFile
	KindArrowFunc
	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:   "Invalid",
	KindFile:      "File",
	KindArrowFunc: "ArrowFunctionExpression",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Node is anything the linter can dispatch on.
type Node interface {
	Kind() Kind
	Extent() source.Span
}
