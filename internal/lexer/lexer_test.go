package lexer

import (
	"testing"

	"opusc/internal/source"
	"opusc/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.opus", []byte(src))
	lx := New(fs.Get(id))

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, toks []token.Token, want ...token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kind count mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestNewlineIsDelimiterAtTopLevel(t *testing.T) {
	toks := lexAll(t, "1\n2")
	assertKinds(t, toks, token.Numeric, token.Delimiter, token.Numeric, token.EOF)
}

func TestNewlineSuppressedInsideParens(t *testing.T) {
	toks := lexAll(t, "(1\n2)")
	assertKinds(t, toks, token.LParen, token.Numeric, token.Numeric, token.RParen, token.EOF)
}

func TestNewlineNotSuppressedInsideCurly(t *testing.T) {
	toks := lexAll(t, "{1\n2}")
	assertKinds(t, toks, token.LBrace, token.Numeric, token.Delimiter, token.Numeric, token.RBrace, token.EOF)
}

func TestNewlineSuppressedInsideSquare(t *testing.T) {
	toks := lexAll(t, "[1\n2]")
	assertKinds(t, toks, token.LBracket, token.Numeric, token.Numeric, token.RBracket, token.EOF)
}

func TestBangIsNotEqualBeforePostfixCheck(t *testing.T) {
	toks := lexAll(t, "5!=3")
	assertKinds(t, toks, token.Numeric, token.BangEq, token.Numeric, token.EOF)
}

func TestBangIsPostfixFactorialAfterNumeric(t *testing.T) {
	toks := lexAll(t, "5!")
	assertKinds(t, toks, token.Numeric, token.BangPostfix, token.EOF)
}

func TestBangIsPostfixFactorialAfterIdentifier(t *testing.T) {
	toks := lexAll(t, "n!")
	assertKinds(t, toks, token.Ident, token.BangPostfix, token.EOF)
}

func TestBangIsPrefixNegationOtherwise(t *testing.T) {
	toks := lexAll(t, "!true")
	assertKinds(t, toks, token.BangPrefix, token.Bool, token.EOF)
}

func TestDoubleUnderscoreIsValidIdentifier(t *testing.T) {
	toks := lexAll(t, "__")
	assertKinds(t, toks, token.Ident, token.EOF)
}

func TestLoneUnderscoreIsOrphan(t *testing.T) {
	toks := lexAll(t, "_")
	assertKinds(t, toks, token.Error, token.EOF)
	if toks[0].ErrKind != token.ErrOrphanUnderscore {
		t.Fatalf("got ErrKind %s, want ErrOrphanUnderscore", toks[0].ErrKind)
	}
}

func TestKeywordsAreClassified(t *testing.T) {
	toks := lexAll(t, "var let if else repeat until for in return func class struct")
	assertKinds(t, toks,
		token.KwVar, token.KwLet, token.KwIf, token.KwElse, token.KwRepeat,
		token.KwUntil, token.KwFor, token.KwIn, token.KwReturn, token.KwFunc,
		token.KwClass, token.KwStruct, token.EOF)
}

func TestBooleanLiterals(t *testing.T) {
	toks := lexAll(t, "true false")
	assertKinds(t, toks, token.Bool, token.Bool, token.EOF)
}

func TestFloatLiteral(t *testing.T) {
	toks := lexAll(t, "3.14")
	assertKinds(t, toks, token.Numeric, token.EOF)
	if toks[0].Lexeme != "3.14" {
		t.Fatalf("lexeme = %q, want 3.14", toks[0].Lexeme)
	}
}

func TestMalformedNumericTwoDots(t *testing.T) {
	toks := lexAll(t, "1.2.3")
	assertKinds(t, toks, token.Error, token.EOF)
	if toks[0].ErrKind != token.ErrMalformedNumeric {
		t.Fatalf("got ErrKind %s, want ErrMalformedNumeric", toks[0].ErrKind)
	}
}

func TestIntegerOverflow(t *testing.T) {
	toks := lexAll(t, "99999999999999999999999999")
	assertKinds(t, toks, token.Error, token.EOF)
	if toks[0].ErrKind != token.ErrOverflow {
		t.Fatalf("got ErrKind %s, want ErrOverflow", toks[0].ErrKind)
	}
}

func TestNumericTerminatesOnClosingBracket(t *testing.T) {
	toks := lexAll(t, "(1)")
	assertKinds(t, toks, token.LParen, token.Numeric, token.RParen, token.EOF)
}

func TestStringLiteral(t *testing.T) {
	toks := lexAll(t, `"hello, world"`)
	assertKinds(t, toks, token.String, token.EOF)
	if toks[0].Lexeme != `"hello, world"` {
		t.Fatalf("lexeme = %q", toks[0].Lexeme)
	}
}

func TestStringLiteralWithEscapedQuote(t *testing.T) {
	toks := lexAll(t, `"a\"b"`)
	assertKinds(t, toks, token.String, token.EOF)
}

func TestUnterminatedStringAtNewline(t *testing.T) {
	toks := lexAll(t, "\"abc\ndef")
	if toks[0].Kind != token.Error || toks[0].ErrKind != token.ErrUnterminatedString {
		t.Fatalf("got %v, want unterminated string error", toks[0])
	}
}

func TestUnterminatedStringAtEOF(t *testing.T) {
	toks := lexAll(t, `"abc`)
	if toks[0].Kind != token.Error || toks[0].ErrKind != token.ErrUnterminatedString {
		t.Fatalf("got %v, want unterminated string error", toks[0])
	}
}

func TestMultiCharOperators(t *testing.T) {
	toks := lexAll(t, "-> == <= >= && ||")
	assertKinds(t, toks, token.Arrow, token.EqEq, token.LtEq, token.GtEq, token.AndAnd, token.OrOr, token.EOF)
}

func TestUndefinedOperatorRun(t *testing.T) {
	toks := lexAll(t, "+++")
	assertKinds(t, toks, token.Error, token.EOF)
	if toks[0].ErrKind != token.ErrUndefinedOperator {
		t.Fatalf("got ErrKind %s, want ErrUndefinedOperator", toks[0].ErrKind)
	}
	if toks[0].Lexeme != "+++" {
		t.Fatalf("lexeme = %q, want +++", toks[0].Lexeme)
	}
}

func TestBareAmpersandIsUndefinedOperator(t *testing.T) {
	toks := lexAll(t, "&")
	assertKinds(t, toks, token.Error, token.EOF)
	if toks[0].ErrKind != token.ErrUndefinedOperator {
		t.Fatalf("got ErrKind %s, want ErrUndefinedOperator", toks[0].ErrKind)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	toks := lexAll(t, "1 // trailing comment\n2")
	assertKinds(t, toks, token.Numeric, token.Delimiter, token.Numeric, token.EOF)
}

func TestBracketFinalizeReportsUnclosed(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.opus", []byte("(1, [2"))
	lx := New(fs.Get(id))
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
	}
	errs := lx.Finalize()
	if len(errs) != 2 {
		t.Fatalf("got %d bracket errors, want 2: %+v", len(errs), errs)
	}
}

func TestArithmeticExpressionTokenSequence(t *testing.T) {
	toks := lexAll(t, "x = 1 + 2 * 3")
	assertKinds(t, toks,
		token.Ident, token.Assign, token.Numeric, token.Plus, token.Numeric,
		token.Star, token.Numeric, token.EOF)
}
