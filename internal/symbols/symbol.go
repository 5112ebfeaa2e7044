// Package symbols implements the scoped symbol table used by the analyzer:
// a head-insert linked list keyed by an integer namespace level.
package symbols

import (
	"opusc/internal/ast"
	"opusc/internal/source"
)

// Symbol is a declared name visible to the analyzer.
type Symbol struct {
	Identifier      string
	Type            string
	Namespace       int
	HasInitialized  bool
	IsMutable       bool
	DeclarationLoc  source.LineCol
	Value           ast.Value
	HasFoldedValue  bool

	next *Symbol
}
