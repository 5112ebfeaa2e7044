package token

// Kind enumerates the closed set of token categories.
type Kind uint8

const (
	// Invalid is the zero value; never emitted by the lexer.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Delimiter is a statement-terminating newline (outside round/square brackets).
	Delimiter
	// Error carries a diagnostic sub-kind instead of a valid token.
	Error

	// Numeric is an integer or floating-point literal.
	Numeric
	// String is a string literal.
	String
	// Bool is the `true`/`false` keyword literal.
	Bool
	// Ident is an identifier.
	Ident

	// KwVar declares a mutable binding.
	KwVar
	// KwLet declares an immutable binding.
	KwLet
	// KwIf begins a conditional statement.
	KwIf
	// KwElse begins the alternate branch of a conditional.
	KwElse
	// KwRepeat begins a repeat-until loop.
	KwRepeat
	// KwUntil terminates a repeat-until loop's body.
	KwUntil
	// KwFor begins a for-in loop.
	KwFor
	// KwIn separates a for-in loop's binding from its source expression.
	KwIn
	// KwReturn returns from a function.
	KwReturn
	// KwFunc introduces a function definition.
	KwFunc
	// KwClass is the reserved word `class`; the parser has no production for
	// it and reports it as an unresolvable token.
	KwClass
	// KwStruct is the reserved word `struct`; the parser has no production
	// for it and reports it as an unresolvable token.
	KwStruct
	// KwTrue is the boolean literal `true`.
	KwTrue
	// KwFalse is the boolean literal `false`.
	KwFalse

	// Plus is `+`.
	Plus
	// Minus is `-`.
	Minus
	// Star is `*`.
	Star
	// Slash is `/`.
	Slash
	// Percent is `%`.
	Percent
	// BangPostfix is postfix `!` (factorial).
	BangPostfix
	// BangPrefix is prefix `!` (logical negation).
	BangPrefix
	// AndAnd is `&&`.
	AndAnd
	// OrOr is `||`.
	OrOr
	// EqEq is `==`.
	EqEq
	// BangEq is `!=`.
	BangEq
	// Lt is `<`.
	Lt
	// Gt is `>`.
	Gt
	// LtEq is `<=`.
	LtEq
	// GtEq is `>=`.
	GtEq
	// Assign is `=`.
	Assign
	// Comma is `,`.
	Comma
	// Colon is `:`.
	Colon
	// Arrow is `->`.
	Arrow
	// LParen is `(`.
	LParen
	// RParen is `)`.
	RParen
	// LBrace is `{`.
	LBrace
	// RBrace is `}`.
	RBrace
	// LBracket is `[`.
	LBracket
	// RBracket is `]`.
	RBracket
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Delimiter:   "Delimiter",
	Error:       "Error",
	Numeric:     "Numeric",
	String:      "String",
	Bool:        "Bool",
	Ident:       "Identifier",
	KwVar:       "var",
	KwLet:       "let",
	KwIf:        "if",
	KwElse:      "else",
	KwRepeat:    "repeat",
	KwUntil:     "until",
	KwFor:       "for",
	KwIn:        "in",
	KwReturn:    "return",
	KwFunc:      "func",
	KwClass:     "class",
	KwStruct:    "struct",
	KwTrue:      "true",
	KwFalse:     "false",
	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	Slash:       "/",
	Percent:     "%",
	BangPostfix: "!(postfix)",
	BangPrefix:  "!(prefix)",
	AndAnd:      "&&",
	OrOr:        "||",
	EqEq:        "==",
	BangEq:      "!=",
	Lt:          "<",
	Gt:          ">",
	LtEq:        "<=",
	GtEq:        ">=",
	Assign:      "=",
	Comma:       ",",
	Colon:       ":",
	Arrow:       "->",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	LBracket:    "[",
	RBracket:    "]",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsKeyword reports whether k is one of the language's reserved words.
func (k Kind) IsKeyword() bool {
	switch k {
	case KwVar, KwLet, KwIf, KwElse, KwRepeat, KwUntil, KwFor, KwIn, KwReturn,
		KwFunc, KwClass, KwStruct, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsOperatorOrPunct reports whether k is an operator or bracket/punctuation token.
func (k Kind) IsOperatorOrPunct() bool {
	switch k {
	case Plus, Minus, Star, Slash, Percent, BangPostfix, BangPrefix, AndAnd, OrOr,
		EqEq, BangEq, Lt, Gt, LtEq, GtEq, Assign, Comma, Colon, Arrow,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket:
		return true
	default:
		return false
	}
}
