package sema

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
)

// analyzeDeclaration handles both a bare `var`/`let` statement and the
// declaration half of an assignment.
func (a *Analyzer) analyzeDeclaration(id ast.NodeID) bool {
	node := a.tree.Get(id)
	identNode := a.tree.Get(node.Left)
	typeNode := a.tree.Get(node.Right)
	name := identNode.Anchor.Lexeme
	declaredType := typeNode.Anchor.Lexeme

	typeNode.Type = declaredType

	if a.syms.DeclaredInCurrentNamespace(name) {
		a.reportSema(diag.SemaRedeclaredVariable, node.Anchor, redeclaredMessage(name, identNode.Anchor))
		identNode.Type = TypeAny
		node.Type = TypeAny
		return false
	}

	mutable := node.Kind == ast.VariableDeclaration
	a.syms.Add(name, declaredType, mutable, identNode.Anchor.Loc)

	identNode.Type = declaredType
	node.Type = declaredType
	return true
}
