package arrowspacing

import "arrowlint/internal/lint"

// RawOptions is the user-supplied form; nil fields fall back to defaults.
type RawOptions struct {
	Before *bool
	After  *bool
}

// Options is the fully resolved configuration used while checking.
type Options struct {
	Before bool // a space is required before "=>"; otherwise forbidden
	After  bool // a space is required after "=>"; otherwise forbidden
}

func DefaultOptions() Options {
	return Options{Before: true, After: true}
}

// NewOptions overlays raw on the defaults.
func NewOptions(raw RawOptions) Options {
	opts := DefaultOptions()
	if raw.Before != nil {
		opts.Before = *raw.Before
	}
	if raw.After != nil {
		opts.After = *raw.After
	}
	return opts
}

// RawFromMap reads the validated option map handed to the rule by the host.
func RawFromMap(m map[string]any) RawOptions {
	return RawOptions{
		Before: lint.BoolOption(m, "before"),
		After:  lint.BoolOption(m, "after"),
	}
}
