// Package diag defines the diagnostic model shared by the lexer, the lint
// engine and every rule.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for findings produced by
//     lexing and by lint rules.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//   - Model fix suggestions as structured text edits that the fix engine can
//     apply later.
//
// # Scope
//
// Package diag does no formatting, IO or fix application. Rendering lives in
// internal/diagfmt; applying edits lives in internal/fix.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – compact numeric identifier with a stable string ID (see codes.go).
//     Rule message kinds such as "expectedBefore" are codes too.
//   - Rule – name of the lint rule that produced the diagnostic, empty for
//     lexer and IO findings.
//   - Message – short human text.
//   - Primary – span of the anchor token.
//   - Notes – optional secondary spans.
//   - Fixes – optional Fix records.
//
// # Fix suggestions
//
// A Fix carries a Title, a Kind, an Applicability and a list of TextEdits.
// TextEdit spans are in source coordinates of the file as loaded. OldText is a
// guard: the fix engine refuses to apply an edit whose current text differs.
// An insertion has an empty span; a deletion has an empty NewText.
//
// # Emitting
//
// Producers receive a Reporter. ReportBuilder chains WithNote / WithFix before
// Emit. BagReporter collects into a Bag, which supports sorting, dedup and
// severity queries.
package diag
