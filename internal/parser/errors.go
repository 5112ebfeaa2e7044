package parser

import (
	"fmt"

	"opusc/internal/diag"
	"opusc/internal/source"
	"opusc/internal/token"
)

// lexErrorCode maps a token-level lexer error sub-kind to its diagnostic code.
func lexErrorCode(ek token.ErrorKind) diag.Code {
	switch ek {
	case token.ErrMalformedNumeric:
		return diag.LexMalformedNumeric
	case token.ErrUndefinedOperator:
		return diag.LexUndefinedOperator
	case token.ErrOverflow:
		return diag.LexOverflow
	case token.ErrOrphanUnderscore:
		return diag.LexOrphanUnderscore
	case token.ErrUnterminatedString:
		return diag.LexUnterminatedString
	default:
		return diag.LexUnrecognizable
	}
}

// lexErrorMessage renders the lexer-error format:
// <ERROR:<SubKind>, Lexeme:"<escaped-lexeme>"> at location L:C.
func lexErrorMessage(tok token.Token) string {
	return fmt.Sprintf("<ERROR:%s, Lexeme:%q> at location %d:%d", tok.ErrKind, tok.Lexeme, tok.Loc.Line, tok.Loc.Col)
}

func bracketCode(ek token.ErrorKind) diag.Code {
	switch ek {
	case token.ErrUnclosedRoundBracket:
		return diag.LexUnclosedRound
	case token.ErrUnclosedCurlyBracket:
		return diag.LexUnclosedCurly
	default:
		return diag.LexUnclosedSquare
	}
}

// bracketMessage renders a stream-level bracket error in the same lexer-error
// format, with the unclosed bracket as its lexeme.
func bracketMessage(ek token.ErrorKind, loc source.LineCol) string {
	open := "["
	switch ek {
	case token.ErrUnclosedRoundBracket:
		open = "("
	case token.ErrUnclosedCurlyBracket:
		open = "{"
	}
	return fmt.Sprintf("<ERROR:%s, Lexeme:%q> at location %d:%d", ek, open, loc.Line, loc.Col)
}
