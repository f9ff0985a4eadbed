// Package token defines lexical token kinds and trivia for the arrowlint lexer.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Spans are half-open byte ranges; tokens never overlap and are ordered.
//   - Whitespace, newlines, comments and the hashbang line are Trivia. They are
//     attached to the next significant token as Leading and never appear in
//     the main token stream.
//   - '=>' is always a single FatArrow token.
package token
