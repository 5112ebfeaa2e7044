package diagfmt

import (
	"fmt"
	"io"

	"opusc/internal/lexer"
	"opusc/internal/token"
)

// FormatTokensPretty runs lx to completion, printing each token in the
// lexer-success debug format:
// <Token:<KindName>, Lexeme:"<lexeme>"> at location L:C.
func FormatTokensPretty(w io.Writer, lx *lexer.Lexer) {
	for {
		tok := lx.Next()
		if tok.Kind == token.Error {
			fmt.Fprintf(w, "<ERROR:%s, Lexeme:%q> at location %d:%d\n", tok.ErrKind, tok.Lexeme, tok.Loc.Line, tok.Loc.Col)
			continue
		}
		fmt.Fprintf(w, "<Token:%s, Lexeme:%q> at location %d:%d\n", tok.Kind, tok.Lexeme, tok.Loc.Line, tok.Loc.Col)
		if tok.Kind == token.EOF {
			break
		}
	}
}
