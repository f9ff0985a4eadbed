package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedTemplate     Code = 1004
	LexBadNumber                Code = 1005
	LexTokenTooLong             Code = 1006
	LexUnterminatedRegex        Code = 1007

	// Structural recognizer
	SynInfo              Code = 2000
	SynUnbalancedClosing Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynArrowNoParams     Code = 2003
	SynArrowNoBody       Code = 2004

	// arrow-spacing message kinds
	ArrowExpectedBefore   Code = 5001
	ArrowUnexpectedBefore Code = 5002
	ArrowExpectedAfter    Code = 5003
	ArrowUnexpectedAfter  Code = 5004
)

var codeIDs = map[Code]string{
	UnknownCode:                 "E0000",
	LexInfo:                     "LEX1000",
	LexUnknownChar:              "LEX1001",
	LexUnterminatedString:       "LEX1002",
	LexUnterminatedBlockComment: "LEX1003",
	LexUnterminatedTemplate:     "LEX1004",
	LexBadNumber:                "LEX1005",
	LexTokenTooLong:             "LEX1006",
	LexUnterminatedRegex:        "LEX1007",
	SynInfo:                     "SYN2000",
	SynUnbalancedClosing:        "SYN2001",
	SynUnclosedDelimiter:        "SYN2002",
	SynArrowNoParams:            "SYN2003",
	SynArrowNoBody:              "SYN2004",
	ArrowExpectedBefore:         "expectedBefore",
	ArrowUnexpectedBefore:       "unexpectedBefore",
	ArrowExpectedAfter:          "expectedAfter",
	ArrowUnexpectedAfter:        "unexpectedAfter",
}

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexUnterminatedTemplate:     "Unterminated template literal",
	LexBadNumber:                "Malformed numeric literal",
	LexTokenTooLong:             "Token exceeds maximum length",
	LexUnterminatedRegex:        "Unterminated regular expression",
	SynUnbalancedClosing:        "Closing delimiter without opener",
	SynUnclosedDelimiter:        "Delimiter is never closed",
	SynArrowNoParams:            "Arrow without a parameter list",
	SynArrowNoBody:              "Arrow without a body",
	ArrowExpectedBefore:         "Missing space before =>.",
	ArrowUnexpectedBefore:       "Unexpected space before =>.",
	ArrowExpectedAfter:          "Missing space after =>.",
	ArrowUnexpectedAfter:        "Unexpected space after =>.",
}

// ID returns the stable identifier used in machine-readable output.
// Rule message kinds keep their catalog names across versions.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("E%04d", uint16(c))
}

// Title returns the default message for the code.
func (c Code) Title() string {
	if d, ok := codeDescription[c]; ok {
		return d
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return c.ID()
}

// CodeByID resolves a stable identifier back to its code.
func CodeByID(id string) (Code, bool) {
	for c, s := range codeIDs {
		if s == id {
			return c, true
		}
	}
	return UnknownCode, false
}
