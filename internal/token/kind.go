package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// PrivateIdent represents a '#name' class member.
	PrivateIdent

	KwAsync
	KwAwait
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwConst
	KwContinue
	KwDefault
	KwDelete
	KwDo
	KwElse
	KwExport
	KwExtends
	KwFalse
	KwFinally
	KwFor
	KwFunction
	KwIf
	KwImport
	KwIn
	KwInstanceof
	KwLet
	KwNew
	KwNull
	KwOf
	KwReturn
	KwStatic
	KwSuper
	KwSwitch
	KwThis
	KwThrow
	KwTrue
	KwTry
	KwTypeof
	KwVar
	KwVoid
	KwWhile
	KwYield

	// NumberLit represents a numeric literal, including bigint suffixes.
	NumberLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// TemplateLit represents a template literal without substitutions.
	TemplateLit
	// TemplateHead is the text from the opening '`' through the first "${".
	TemplateHead
	// TemplateMiddle is the text from a substitution's '}' through the next "${".
	TemplateMiddle
	// TemplateTail is the text from the last substitution's '}' through the closing '`'.
	TemplateTail
	// RegexLit represents a regular expression literal with its flags.
	RegexLit

	Plus             // +
	Minus            // -
	Star             // *
	StarStar         // **
	Slash            // /
	Percent          // %
	PlusPlus         // ++
	MinusMinus       // --
	Assign           // =
	PlusAssign       // +=
	MinusAssign      // -=
	StarAssign       // *=
	SlashAssign      // /=
	PercentAssign    // %=
	StarStarAssign   // **=
	AmpAssign        // &=
	PipeAssign       // |=
	CaretAssign      // ^=
	ShlAssign        // <<=
	ShrAssign        // >>=
	UShrAssign       // >>>=
	AndAndAssign     // &&=
	OrOrAssign       // ||=
	NullishAssign    // ??=
	EqEq             // ==
	EqEqEq           // ===
	Bang             // !
	BangEq           // !=
	BangEqEq         // !==
	Lt               // <
	LtEq             // <=
	Gt               // >
	GtEq             // >=
	Shl              // <<
	Shr              // >>
	UShr             // >>>
	Amp              // &
	Pipe             // |
	Caret            // ^
	Tilde            // ~
	AndAnd           // &&
	OrOr             // ||
	Question         // ?
	QuestionQuestion // ??
	QuestionDot      // ?.
	Colon            // :
	Semicolon        // ;
	Comma            // ,
	Dot              // .
	DotDotDot        // ...
	FatArrow         // =>
	LParen           // (
	RParen           // )
	LBrace           // {
	RBrace           // }
	LBracket         // [
	RBracket         // ]
	At               // @

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	PrivateIdent: "PrivateIdent",

	KwAsync:      "KwAsync",
	KwAwait:      "KwAwait",
	KwBreak:      "KwBreak",
	KwCase:       "KwCase",
	KwCatch:      "KwCatch",
	KwClass:      "KwClass",
	KwConst:      "KwConst",
	KwContinue:   "KwContinue",
	KwDefault:    "KwDefault",
	KwDelete:     "KwDelete",
	KwDo:         "KwDo",
	KwElse:       "KwElse",
	KwExport:     "KwExport",
	KwExtends:    "KwExtends",
	KwFalse:      "KwFalse",
	KwFinally:    "KwFinally",
	KwFor:        "KwFor",
	KwFunction:   "KwFunction",
	KwIf:         "KwIf",
	KwImport:     "KwImport",
	KwIn:         "KwIn",
	KwInstanceof: "KwInstanceof",
	KwLet:        "KwLet",
	KwNew:        "KwNew",
	KwNull:       "KwNull",
	KwOf:         "KwOf",
	KwReturn:     "KwReturn",
	KwStatic:     "KwStatic",
	KwSuper:      "KwSuper",
	KwSwitch:     "KwSwitch",
	KwThis:       "KwThis",
	KwThrow:      "KwThrow",
	KwTrue:       "KwTrue",
	KwTry:        "KwTry",
	KwTypeof:     "KwTypeof",
	KwVar:        "KwVar",
	KwVoid:       "KwVoid",
	KwWhile:      "KwWhile",
	KwYield:      "KwYield",

	NumberLit:      "NumberLit",
	StringLit:      "StringLit",
	TemplateLit:    "TemplateLit",
	TemplateHead:   "TemplateHead",
	TemplateMiddle: "TemplateMiddle",
	TemplateTail:   "TemplateTail",
	RegexLit:       "RegexLit",

	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	StarStar:         "StarStar",
	Slash:            "Slash",
	Percent:          "Percent",
	PlusPlus:         "PlusPlus",
	MinusMinus:       "MinusMinus",
	Assign:           "Assign",
	PlusAssign:       "PlusAssign",
	MinusAssign:      "MinusAssign",
	StarAssign:       "StarAssign",
	SlashAssign:      "SlashAssign",
	PercentAssign:    "PercentAssign",
	StarStarAssign:   "StarStarAssign",
	AmpAssign:        "AmpAssign",
	PipeAssign:       "PipeAssign",
	CaretAssign:      "CaretAssign",
	ShlAssign:        "ShlAssign",
	ShrAssign:        "ShrAssign",
	UShrAssign:       "UShrAssign",
	AndAndAssign:     "AndAndAssign",
	OrOrAssign:       "OrOrAssign",
	NullishAssign:    "NullishAssign",
	EqEq:             "EqEq",
	EqEqEq:           "EqEqEq",
	Bang:             "Bang",
	BangEq:           "BangEq",
	BangEqEq:         "BangEqEq",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	Shl:              "Shl",
	Shr:              "Shr",
	UShr:             "UShr",
	Amp:              "Amp",
	Pipe:             "Pipe",
	Caret:            "Caret",
	Tilde:            "Tilde",
	AndAnd:           "AndAnd",
	OrOr:             "OrOr",
	Question:         "Question",
	QuestionQuestion: "QuestionQuestion",
	QuestionDot:      "QuestionDot",
	Colon:            "Colon",
	Semicolon:        "Semicolon",
	Comma:            "Comma",
	Dot:              "Dot",
	DotDotDot:        "DotDotDot",
	FatArrow:         "FatArrow",
	LParen:           "LParen",
	RParen:           "RParen",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	At:               "At",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
