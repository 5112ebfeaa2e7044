package symbols

import (
	"fmt"
	"strings"
)

// Dump renders the table as a fixed-column text table for the `opusc
// symbols` debug command.
func (t *Table) Dump() string {
	rows := t.All()

	cols := []string{"Identifier", "Type", "Namespace", "Initialized", "Mutable", "Location"}
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}

	data := make([][]string, len(rows))
	for i, s := range rows {
		data[i] = []string{
			s.Identifier,
			s.Type,
			fmt.Sprintf("%d", s.Namespace),
			fmt.Sprintf("%t", s.HasInitialized),
			fmt.Sprintf("%t", s.IsMutable),
			fmt.Sprintf("%d:%d", s.DeclarationLoc.Line, s.DeclarationLoc.Col),
		}
		for j, cell := range data[i] {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow(&b, cols, widths)
	writeSeparator(&b, widths)
	for _, row := range data {
		writeRow(&b, row, widths)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" | ")
		}
		fmt.Fprintf(b, "%-*s", widths[i], cell)
	}
	b.WriteString("\n")
}

func writeSeparator(b *strings.Builder, widths []int) {
	for i, w := range widths {
		if i > 0 {
			b.WriteString("-+-")
		}
		b.WriteString(strings.Repeat("-", w))
	}
	b.WriteString("\n")
}
