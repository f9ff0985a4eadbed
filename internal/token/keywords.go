package token

var keywords = map[string]Kind{
	"async":      KwAsync,
	"await":      KwAwait,
	"break":      KwBreak,
	"case":       KwCase,
	"catch":      KwCatch,
	"class":      KwClass,
	"const":      KwConst,
	"continue":   KwContinue,
	"default":    KwDefault,
	"delete":     KwDelete,
	"do":         KwDo,
	"else":       KwElse,
	"export":     KwExport,
	"extends":    KwExtends,
	"false":      KwFalse,
	"finally":    KwFinally,
	"for":        KwFor,
	"function":   KwFunction,
	"if":         KwIf,
	"import":     KwImport,
	"in":         KwIn,
	"instanceof": KwInstanceof,
	"let":        KwLet,
	"new":        KwNew,
	"null":       KwNull,
	"of":         KwOf,
	"return":     KwReturn,
	"static":     KwStatic,
	"super":      KwSuper,
	"switch":     KwSwitch,
	"this":       KwThis,
	"throw":      KwThrow,
	"true":       KwTrue,
	"try":        KwTry,
	"typeof":     KwTypeof,
	"var":        KwVar,
	"void":       KwVoid,
	"while":      KwWhile,
	"yield":      KwYield,
}

// LookupKeyword reports the keyword kind for ident. Keywords are case-sensitive.
// Contextual keywords (async, of, static, let, yield, await) are returned as
// keywords too; the parser decides whether they act as identifiers.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
