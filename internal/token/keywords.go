package token

// keywords is the closed set of reserved words recognized after an
// identifier has been fully collected.
var keywords = map[string]Kind{
	"var":    KwVar,
	"let":    KwLet,
	"if":     KwIf,
	"else":   KwElse,
	"repeat": KwRepeat,
	"until":  KwUntil,
	"for":    KwFor,
	"in":     KwIn,
	"return": KwReturn,
	"func":   KwFunc,
	"class":  KwClass,
	"struct": KwStruct,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword reports the Kind for ident if it is a reserved word.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
