package lexer

import (
	"strconv"

	"fortio.org/safecast"

	"opusc/internal/token"
)

// scanNumber consumes a run of digits with at most one interior decimal
// point. A second dot, or any character
// other than a legal terminator immediately following the run, is a
// malformed-numeric error whose lexeme captures the whole offending run.
func (lx *Lexer) scanNumber() token.Token {
	loc := lx.reader.Location()
	start := lx.mark()

	for isDigit(lx.reader.Peek()) {
		lx.reader.Consume()
	}

	dots := 0
	if lx.reader.Peek() == '.' && isDigit(lx.reader.PeekAt(1)) {
		dots++
		lx.reader.Consume()
		for isDigit(lx.reader.Peek()) {
			lx.reader.Consume()
		}
	}

	malformed := false
	for {
		b := lx.reader.Peek()
		if isNumericTerminator(b) {
			break
		}
		malformed = true
		if b == '.' {
			dots++
		}
		lx.reader.Consume()
	}
	if dots > 1 {
		malformed = true
	}

	if malformed {
		return lx.emitError(token.ErrMalformedNumeric, loc, lx.spanFrom(start))
	}

	sp := lx.spanFrom(start)
	if overflows(lx.lexeme(sp), dots > 0) {
		return lx.emitError(token.ErrOverflow, loc, sp)
	}
	return lx.emit(token.Numeric, loc, sp)
}

// overflows reports whether lexeme's numeric value doesn't fit the host
// representation: int64 for integer literals, float64 for literals with a
// decimal point. Integer magnitude is parsed unsigned first (a numeric
// literal never carries its own sign; minus is a separate prefix operator) then
// range-checked into int64 with safecast, matching the overflow-refusal
// policy used everywhere else magnitudes cross a type boundary.
func overflows(lexeme string, isFloat bool) bool {
	if isFloat {
		_, err := strconv.ParseFloat(lexeme, 64)
		return err != nil
	}
	magnitude, err := strconv.ParseUint(lexeme, 10, 64)
	if err != nil {
		return true
	}
	_, err = safecast.Conv[int64](magnitude)
	return err != nil
}
