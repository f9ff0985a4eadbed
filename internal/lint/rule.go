package lint

import (
	"arrowlint/internal/ast"
)

// RuleType classifies what a rule checks.
type RuleType string

const (
	TypeProblem    RuleType = "problem"
	TypeSuggestion RuleType = "suggestion"
	TypeLayout     RuleType = "layout"
)

// OptionType is the value type of one rule option.
type OptionType string

const (
	OptionBool   OptionType = "boolean"
	OptionString OptionType = "string"
	OptionInt    OptionType = "integer"
)

// OptionSpec describes one accepted option key.
type OptionSpec struct {
	Name        string
	Type        OptionType
	Default     any
	Description string
}

// Meta is the static description of a rule.
type Meta struct {
	Type        RuleType
	Description string
	URL         string
	// Fixable is "whitespace" or "code"; empty when the rule offers no fixes.
	Fixable  string
	Schema   []OptionSpec
	Messages map[string]string
}

// Handler receives one node. A non-nil error aborts linting of the file.
type Handler func(node ast.Node) error

// Handlers maps node kinds to the rule's handler for that kind.
type Handlers map[ast.Kind]Handler

type Rule interface {
	Name() string
	Meta() Meta
	// Create is called once per file and may reject ctx.Options.
	Create(ctx *Context) (Handlers, error)
}

// Factory builds a fresh rule value.
type Factory func() Rule
