package lint

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownOption = errors.New("unknown option")
	ErrBadOption     = errors.New("invalid option value")
)

// ValidateOptions checks raw option values against the rule schema.
// Integer options accept any Go integer type and are normalized to int64.
func ValidateOptions(rule string, schema []OptionSpec, raw map[string]any) (map[string]any, error) {
	specs := make(map[string]OptionSpec, len(schema))
	for _, s := range schema {
		specs[s.Name] = s
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(raw))
	for _, k := range keys {
		spec, ok := specs[k]
		if !ok {
			return nil, fmt.Errorf("%w %q for rule %q", ErrUnknownOption, k, rule)
		}
		v, err := coerce(spec.Type, raw[k])
		if err != nil {
			return nil, fmt.Errorf("rule %q option %q: %w", rule, k, err)
		}
		out[k] = v
	}
	return out, nil
}

func coerce(t OptionType, v any) (any, error) {
	switch t {
	case OptionBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case OptionString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case OptionInt:
		switch n := v.(type) {
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		case int32:
			return int64(n), nil
		}
	}
	return nil, fmt.Errorf("%w: want %s, got %T", ErrBadOption, t, v)
}

// BoolOption returns a pointer to the boolean option name, or nil when unset.
func BoolOption(opts map[string]any, name string) *bool {
	v, ok := opts[name].(bool)
	if !ok {
		return nil
	}
	return &v
}
