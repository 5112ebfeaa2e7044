package lexer

import (
	"opusc/internal/source"
	"opusc/internal/token"
)

// Lexer is the context-sensitive tokenizer. Each call to
// Next returns exactly one token; state carried across calls is the current
// source location, the previously emitted token's kind, and the
// bracket-nesting vector.
type Lexer struct {
	reader *source.Reader

	prevKind    token.Kind
	round       int
	curly       int
	square      int
	eofReported bool
}

// New creates a Lexer reading from f.
func New(f *source.File) *Lexer {
	return &Lexer{
		reader:   source.NewReader(f),
		prevKind: token.Invalid,
	}
}

// BracketError is a stream-level diagnostic produced once, at EOF, for each
// bracket class left open.
type BracketError struct {
	Kind token.ErrorKind
	Loc  source.LineCol
	Span source.Span
}

// mark records the current offset so SpanFrom can compute a Span later.
func (lx *Lexer) mark() uint32 { return lx.reader.Off }

func (lx *Lexer) spanFrom(start uint32) source.Span {
	return source.Span{File: lx.reader.File.ID, Start: start, End: lx.reader.Off}
}

func (lx *Lexer) lexeme(sp source.Span) string {
	return string(lx.reader.File.Content[sp.Start:sp.End])
}

func (lx *Lexer) emit(kind token.Kind, loc source.LineCol, sp source.Span) token.Token {
	tok := token.Token{
		Kind:   kind,
		Loc:    loc,
		Span:   sp,
		Lexeme: token.BoundedLexeme(lx.lexeme(sp)),
	}
	lx.prevKind = kind
	return tok
}

func (lx *Lexer) emitError(errKind token.ErrorKind, loc source.LineCol, sp source.Span) token.Token {
	tok := token.Token{
		Kind:    token.Error,
		ErrKind: errKind,
		Loc:     loc,
		Span:    sp,
		Lexeme:  token.BoundedLexeme(lx.lexeme(sp)),
	}
	lx.prevKind = token.Error
	return tok
}

// Next returns the next token.
func (lx *Lexer) Next() token.Token {
	for {
		b := lx.reader.SkipToNextToken()

		if b == '\n' {
			if lx.round == 0 && lx.square == 0 {
				loc := lx.reader.Location()
				start := lx.mark()
				lx.reader.Consume()
				return lx.emit(token.Delimiter, loc, lx.spanFrom(start))
			}
			// Inside round/square nesting a newline is whitespace.
			lx.reader.Consume()
			continue
		}

		if b == eofByte && lx.reader.AtEOF() {
			loc := lx.reader.Location()
			start := lx.mark()
			lx.eofReported = true
			return lx.emit(token.EOF, loc, lx.spanFrom(start))
		}

		switch {
		case b == '!':
			return lx.scanBang()
		case isDigit(b):
			return lx.scanNumber()
		case isIdentStart(b):
			return lx.scanIdentOrKeyword()
		case b == '"':
			return lx.scanString()
		default:
			return lx.scanOperatorOrPunct()
		}
	}
}

// scanBang implements the context-sensitive `!`.
func (lx *Lexer) scanBang() token.Token {
	loc := lx.reader.Location()
	start := lx.mark()
	lx.reader.Consume() // '!'

	if lx.reader.Peek() == '=' {
		lx.reader.Consume()
		return lx.emit(token.BangEq, loc, lx.spanFrom(start))
	}
	if lx.prevKind == token.Numeric || lx.prevKind == token.Ident {
		return lx.emit(token.BangPostfix, loc, lx.spanFrom(start))
	}
	return lx.emit(token.BangPrefix, loc, lx.spanFrom(start))
}

// Finalize reports one BracketError per non-zero bracket counter, to be
// called once Next has returned an EOF token. It is idempotent.
func (lx *Lexer) Finalize() []BracketError {
	loc := lx.reader.Location()
	sp := source.Span{File: lx.reader.File.ID, Start: lx.reader.Off, End: lx.reader.Off}
	var errs []BracketError
	if lx.round > 0 {
		errs = append(errs, BracketError{Kind: token.ErrUnclosedRoundBracket, Loc: loc, Span: sp})
	}
	if lx.curly > 0 {
		errs = append(errs, BracketError{Kind: token.ErrUnclosedCurlyBracket, Loc: loc, Span: sp})
	}
	if lx.square > 0 {
		errs = append(errs, BracketError{Kind: token.ErrUnclosedSquareBracket, Loc: loc, Span: sp})
	}
	return errs
}
