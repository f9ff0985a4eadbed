// Package rules wires the built-in rules into a lint.Registry.
package rules

import (
	"arrowlint/internal/lint"
	"arrowlint/internal/rules/arrowspacing"
)

var builtin = []lint.Factory{
	arrowspacing.New,
}

// Builtin returns a registry holding every built-in rule.
func Builtin() *lint.Registry {
	reg := lint.NewRegistry()
	for _, f := range builtin {
		reg.MustRegister(f)
	}
	return reg
}
