package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"opusc/internal/diag"
	"opusc/internal/source"
)

// Pretty writes bag's diagnostics to w in the exact per-layer format for
// each compiler stage. Call bag.Sort() first for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	errTag := color.New(color.FgRed, color.Bold).SprintFunc()
	if !opts.Color {
		errTag = fmt.Sprint
	}

	for _, d := range bag.Items() {
		switch d.Layer {
		case diag.LayerParser:
			fmt.Fprintf(w, "Parsing Error at %d:%d\n", d.Loc.Line, d.Loc.Col)
			fmt.Fprintf(w, "%s %s\n", errTag("[ERROR]"), d.Message)
		case diag.LayerLexer:
			// d.Message is already the full "<ERROR:SubKind, Lexeme:"..."> at
			// location L:C" string built at the point of report.
			fmt.Fprintln(w, colorizeTag(d.Message, errTag))
		default:
			// LayerSema and LayerHost bake "at location L:C" into the message
			// themselves.
			fmt.Fprintf(w, "%s %s\n", errTag("[ERROR]"), d.Message)
		}
		if opts.Context && fs != nil {
			writeContext(w, fs, d)
		}
	}
}

// colorizeTag re-wraps a lexer message's leading "<ERROR:...>" tag in color
// without touching the rest of the line.
func colorizeTag(msg string, tag func(a ...interface{}) string) string {
	end := strings.Index(msg, ">")
	if end < 0 {
		return msg
	}
	return tag(msg[:end+1]) + msg[end+1:]
}

// writeContext prints the offending source line and a caret aligned under
// the reported column, accounting for wide runes via go-runewidth.
func writeContext(w io.Writer, fs *source.FileSet, d diag.Diagnostic) {
	f := fs.Get(d.Primary.File)
	line := f.GetLine(d.Loc.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	runes := []rune(line)
	col := int(d.Loc.Col) - 1
	if col > len(runes) {
		col = len(runes)
	}
	pad := runewidth.StringWidth(string(runes[:col]))
	fmt.Fprintf(w, "    %s^\n", strings.Repeat(" ", pad))
}
