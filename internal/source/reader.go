package source

import "fortio.org/safecast"

// eof is the sentinel byte value returned by Peek/Consume once the file is
// exhausted. It is never a valid Opus source byte in isolation because 0x00
// cannot appear in a text source file the lexer accepts.
const eof byte = 0

// Reader is a buffered byte source: a forward-only cursor over a single
// File with a non-destructive one-byte peek. Rather than a literal
// one-byte pushback buffer, Reader tracks an offset into File.Content
// directly — Peek re-reads File.Content[Off] on every
// call without advancing it, which satisfies the same contract (peek returns
// the same byte until Consume takes it) with less bookkeeping. See DESIGN.md.
type Reader struct {
	File *File
	Off  uint32

	line uint32
	col  uint32
}

// NewReader creates a Reader positioned at the start of f, at line 1 column 1.
func NewReader(f *File) *Reader {
	return &Reader{File: f, Off: 0, line: 1, col: 1}
}

func (r *Reader) limit() uint32 {
	n, err := safecast.Conv[uint32](len(r.File.Content))
	if err != nil {
		panic(err)
	}
	return n
}

// AtEOF reports whether the reader has consumed all bytes of the file.
func (r *Reader) AtEOF() bool { return r.Off >= r.limit() }

// Peek returns the next byte without consuming it, and eof once exhausted.
func (r *Reader) Peek() byte {
	if r.AtEOF() {
		return eof
	}
	return r.File.Content[r.Off]
}

// PeekAt returns the byte n positions ahead of the cursor without consuming
// anything, and eof if that position is out of range.
func (r *Reader) PeekAt(n uint32) byte {
	off := r.Off + n
	if off >= r.limit() {
		return eof
	}
	return r.File.Content[off]
}

// Consume advances past the next byte, updating line/column, and returns it.
// Consuming past EOF is a no-op that returns eof.
func (r *Reader) Consume() byte {
	if r.AtEOF() {
		return eof
	}
	b := r.File.Content[r.Off]
	r.Off++
	if b == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return b
}

// Location returns the reader's current 1-indexed line/column.
func (r *Reader) Location() LineCol {
	return LineCol{Line: r.line, Col: r.col}
}

// isWhitespace reports whether b is horizontal whitespace. Newline is
// deliberately excluded — it is lexically significant to the lexer.
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\r', '\f':
		return true
	default:
		return false
	}
}

// SkipToNextToken skips whitespace and "//"-to-end-of-line comments, leaving
// the cursor at the first byte of the next token (or newline, or EOF), and
// returns that byte without consuming it.
func (r *Reader) SkipToNextToken() byte {
	for {
		for isWhitespace(r.Peek()) {
			r.Consume()
		}
		if r.Peek() == '/' && r.PeekAt(1) == '/' {
			for !r.AtEOF() && r.Peek() != '\n' {
				r.Consume()
			}
			continue
		}
		return r.Peek()
	}
}

// AdvanceToNextLine consumes bytes up to and including the next newline (or
// EOF) and returns the byte that follows. The parser's panic-mode recovery
// does not use it; it resynchronizes on Delimiter tokens instead.
func (r *Reader) AdvanceToNextLine() byte {
	for !r.AtEOF() && r.Peek() != '\n' {
		r.Consume()
	}
	if !r.AtEOF() {
		r.Consume()
	}
	return r.Peek()
}
