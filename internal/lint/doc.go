// Package lint hosts style rules. A rule is created once per file with a
// Context and returns handlers keyed by node kind; Run walks the file and
// dispatches every node to the handlers registered for its kind.
package lint
