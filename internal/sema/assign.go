package sema

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
	"opusc/internal/symbols"
)

// analyzeAssignment handles both plain assignment and combined
// declaration-with-assignment: if the left side is a fresh declaration,
// analyze it first and target the symbol
// it just inserted; otherwise resolve an existing identifier, checking
// undeclared-ness and immutability before accepting the new value.
func (a *Analyzer) analyzeAssignment(id ast.NodeID) bool {
	node := a.tree.Get(id)
	leftNode := a.tree.Get(node.Left)

	var sym *symbols.Symbol
	leftOK := true

	switch leftNode.Kind {
	case ast.VariableDeclaration, ast.ConstantDeclaration:
		leftOK = a.analyzeDeclaration(node.Left)
		name := a.tree.Get(leftNode.Left).Anchor.Lexeme
		sym = a.syms.LookupVisible(name)
	case ast.Identifier:
		name := leftNode.Anchor.Lexeme
		sym = a.syms.LookupVisible(name)
		if sym == nil {
			a.reportSema(diag.SemaUndeclaredVariable, leftNode.Anchor, undeclaredMessage(name, leftNode.Anchor))
			leftOK = false
		} else if !sym.IsMutable && sym.HasInitialized {
			a.reportSema(diag.SemaImmutableModification, leftNode.Anchor, immutableMessage(name, leftNode.Anchor))
			leftOK = false
		}
		leftNode.Type = TypeAny
		if sym != nil {
			leftNode.Type = sym.Type
		}
	}

	rhsType, rhsOK := a.analyzeExpression(node.Right)
	node.Type = rhsType

	if sym == nil || !leftOK {
		return leftOK && rhsOK
	}

	if rhsType != sym.Type {
		a.reportSema(diag.SemaOperationTypeMismatch, node.Anchor, mismatchMessage(sym.Type, rhsType, node.Anchor))
		return false
	}

	rhsNode := a.tree.Get(node.Right)
	if rhsNode.Foldable {
		sym.Value = rhsNode.Value
		sym.HasFoldedValue = true
	}
	sym.HasInitialized = true
	return rhsOK
}
