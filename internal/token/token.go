package token

import "opusc/internal/source"

// MaxLexeme bounds the stored lexeme length to a small fixed buffer.
// Lexemes longer than this are truncated with a trailing ellipsis; the full span
// still covers the real source range for diagnostics.
const MaxLexeme = 128

// Token is an immutable value object: (kind, location, lexeme), plus an
// error sub-kind when Kind == Error. Once produced by the lexer, a Token is
// never mutated; the parser may retain copies as AST anchors.
type Token struct {
	Kind    Kind
	Loc     source.LineCol
	Span    source.Span
	Lexeme  string
	ErrKind ErrorKind
}

// BoundedLexeme truncates s to MaxLexeme bytes, appending "..." when truncated.
func BoundedLexeme(s string) string {
	if len(s) <= MaxLexeme {
		return s
	}
	return s[:MaxLexeme-3] + "..."
}

// IsLiteral reports whether t is a numeric, string, or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Numeric, String, Bool:
		return true
	default:
		return false
	}
}
