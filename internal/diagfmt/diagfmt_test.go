package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"opusc/internal/diag"
	"opusc/internal/lexer"
	"opusc/internal/parser"
	"opusc/internal/source"
)

func TestPrettyParserErrorIsTwoLines(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.opus", []byte("let : Int = 1\n"))
	lx := lexer.New(fs.Get(id))
	bag := diag.NewBag(0)
	parser.Parse(lx, bag)
	if !bag.HasErrors() {
		t.Fatalf("expected a parser diagnostic")
	}

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least two lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "Parsing Error at ") {
		t.Fatalf("expected first line to start with 'Parsing Error at ', got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[ERROR] ") {
		t.Fatalf("expected second line to start with '[ERROR] ', got %q", lines[1])
	}
}

func TestPrettyLexerErrorIsSingleLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.opus", []byte("_ = 1\n"))
	lx := lexer.New(fs.Get(id))
	bag := diag.NewBag(0)
	parser.Parse(lx, bag)
	if !bag.HasErrors() {
		t.Fatalf("expected a lexer diagnostic")
	}

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "<ERROR:") {
		t.Fatalf("expected a lexer-format tag in output, got %q", buf.String())
	}
}

func TestFormatJSONIncludesLayer(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.opus", []byte("_ = 1\n"))
	lx := lexer.New(fs.Get(id))
	bag := diag.NewBag(0)
	parser.Parse(lx, bag)

	var buf bytes.Buffer
	if err := FormatJSON(&buf, bag, JSONOpts{}); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	if !strings.Contains(buf.String(), "\"layer\":\"lexer\"") {
		t.Fatalf("expected layer field in JSON output, got %q", buf.String())
	}
}

func TestFormatMsgpackWritesBytes(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LayerHost, diag.HostIOFailure, source.Span{}, source.LineCol{}, "boom"))

	var buf bytes.Buffer
	if err := FormatMsgpack(&buf, bag); err != nil {
		t.Fatalf("FormatMsgpack: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty msgpack output")
	}
}
