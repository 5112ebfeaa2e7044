package lexer

import "opusc/internal/token"

// scanIdentOrKeyword consumes an identifier, then classifies it as a
// keyword, boolean literal, or plain identifier — except for the single
// orphan-underscore case, which is treated as an error rather
// than a valid one-character identifier. A run of two or more underscores
// (e.g. "__") is a valid identifier; only the exact lexeme "_" is rejected.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	loc := lx.reader.Location()
	start := lx.mark()

	lx.reader.Consume() // identifier-start byte
	for isIdentContinue(lx.reader.Peek()) {
		lx.reader.Consume()
	}

	sp := lx.spanFrom(start)
	lexeme := lx.lexeme(sp)

	if lexeme == "_" {
		return lx.emitError(token.ErrOrphanUnderscore, loc, sp)
	}
	if kw, ok := token.LookupKeyword(lexeme); ok {
		if kw == token.KwTrue || kw == token.KwFalse {
			return lx.emit(token.Bool, loc, sp)
		}
		return lx.emit(kw, loc, sp)
	}
	return lx.emit(token.Ident, loc, sp)
}
