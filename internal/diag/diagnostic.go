package diag

import "opusc/internal/source"

// Layer identifies which compiler stage produced a diagnostic, used by
// internal/diagfmt to pick one of three distinct rendering formats.
type Layer uint8

const (
	LayerLexer Layer = iota
	LayerParser
	LayerSema
	LayerHost
)

// Diagnostic is a single compiler-produced problem report, pinned to a
// source location.
type Diagnostic struct {
	Severity Severity
	Layer    Layer
	Code     Code
	Message  string
	Primary  source.Span
	Loc      source.LineCol
	Lexeme   string // populated for lexer diagnostics
}

// New builds a Diagnostic at the given severity.
func New(sev Severity, layer Layer, code Code, primary source.Span, loc source.LineCol, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Layer:    layer,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Loc:      loc,
	}
}

// NewError is a shortcut for SevError diagnostics.
func NewError(layer Layer, code Code, primary source.Span, loc source.LineCol, msg string) Diagnostic {
	return New(SevError, layer, code, primary, loc, msg)
}

// WithLexeme attaches the offending lexeme, used by the lexer-error format.
func (d Diagnostic) WithLexeme(lex string) Diagnostic {
	d.Lexeme = lex
	return d
}
