package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"opusc/internal/diag"
)

// FormatMsgpack writes bag's diagnostics to w as a MessagePack array, for
// tooling that would rather not parse text.
func FormatMsgpack(w io.Writer, bag *diag.Bag) error {
	out := make([]DiagnosticJSON, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, toJSON(d))
	}
	return msgpack.NewEncoder(w).Encode(out)
}
