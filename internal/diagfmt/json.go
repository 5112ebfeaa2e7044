package diagfmt

import (
	"encoding/json"
	"io"

	"opusc/internal/diag"
)

// DiagnosticJSON is the machine-readable rendering of a single Diagnostic.
type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Layer    string `json:"layer"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Line     uint32 `json:"line"`
	Column   uint32 `json:"column"`
	Lexeme   string `json:"lexeme,omitempty"`
}

func layerName(l diag.Layer) string {
	switch l {
	case diag.LayerLexer:
		return "lexer"
	case diag.LayerParser:
		return "parser"
	case diag.LayerSema:
		return "analyzer"
	default:
		return "host"
	}
}

func toJSON(d diag.Diagnostic) DiagnosticJSON {
	return DiagnosticJSON{
		Severity: d.Severity.String(),
		Layer:    layerName(d.Layer),
		Code:     d.Code.String(),
		Message:  d.Message,
		Line:     d.Loc.Line,
		Column:   d.Loc.Col,
		Lexeme:   d.Lexeme,
	}
}

// FormatJSON writes bag's diagnostics to w as a JSON array.
func FormatJSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	out := make([]DiagnosticJSON, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, toJSON(d))
	}
	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
