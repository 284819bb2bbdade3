package token

// Keyword table. `async` is deliberately absent: it lexes as an ordinary
// identifier, and only the statement parser gives it meaning.
var keywords = map[string]Kind{
	"const":      KwConst,
	"constant":   KwConstant,
	"else":       KwElse,
	"false":      KwFalse,
	"finalize":   KwFinalize,
	"for":        KwFor,
	"function":   KwFunction,
	"if":         KwIf,
	"import":     KwImport,
	"in":         KwIn,
	"inline":     KwInline,
	"let":        KwLet,
	"mapping":    KwMapping,
	"program":    KwProgram,
	"public":     KwPublic,
	"record":     KwRecord,
	"return":     KwReturn,
	"struct":     KwStruct,
	"then":       KwThen,
	"transition": KwTransition,
	"true":       KwTrue,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
