package ast

import (
	"fmt"
	"strings"
)

// Print renders the tree rooted at id as a depth-indented dump, used for
// golden-file tests and the `opusc parse` debug-dump CLI path.
func (t *Tree) Print(id NodeID) string {
	var b strings.Builder
	t.print(&b, id, "", true)
	return b.String()
}

func (t *Tree) print(b *strings.Builder, id NodeID, prefix string, last bool) {
	n := t.Get(id)
	if n == nil {
		b.WriteString(prefix)
		b.WriteString(branch(last))
		b.WriteString("<empty>\n")
		return
	}

	b.WriteString(prefix)
	b.WriteString(branch(last))
	fmt.Fprintf(b, "%s", n.Kind)
	if n.Anchor.Lexeme != "" {
		fmt.Fprintf(b, " %q", n.Anchor.Lexeme)
	}
	if n.Type != "" && n.Type != AnyType {
		fmt.Fprintf(b, " :%s", n.Type)
	}
	b.WriteString("\n")

	childPrefix := prefix + continuation(last)
	hasLeft := !n.Left.IsEmpty()
	hasRight := !n.Right.IsEmpty()
	if hasLeft {
		t.print(b, n.Left, childPrefix, !hasRight)
	}
	if hasRight {
		t.print(b, n.Right, childPrefix, true)
	}
}

func branch(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func continuation(last bool) string {
	if last {
		return "    "
	}
	return "│   "
}
