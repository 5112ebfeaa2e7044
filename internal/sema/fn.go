package sema

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
)

// analyzeFunction handles both a bare FunctionDefinition (declaration only)
// and a FunctionImplementation (declaration plus body). The function's own
// name is registered in the enclosing scope, using its declared return type,
// so sibling statements can resolve a FunctionCall's result type before the
// body is analyzed; parameters are then registered as immutable,
// pre-initialized symbols in the function's own namespace.
func (a *Analyzer) analyzeFunction(id ast.NodeID) bool {
	node := a.tree.Get(id)

	var def *ast.Node
	var body ast.NodeID
	if node.Kind == ast.FunctionImplementation {
		def = a.tree.Get(node.Left)
		body = node.Right
	} else {
		def = node
	}

	nameNode := a.tree.Get(def.Left)
	sig := a.tree.Get(def.Right)
	returnTypeNode := a.tree.Get(sig.Right)
	returnType := returnTypeNode.Anchor.Lexeme
	returnTypeNode.Type = returnType

	name := nameNode.Anchor.Lexeme
	redeclared := a.syms.DeclaredInCurrentNamespace(name)
	if redeclared {
		a.reportSema(diag.SemaRedeclaredVariable, nameNode.Anchor, redeclaredMessage(name, nameNode.Anchor))
	} else {
		sym := a.syms.Add(name, returnType, false, nameNode.Anchor.Loc)
		sym.HasInitialized = true
	}
	nameNode.Type = returnType
	node.Type = returnType

	a.syms.EnterNamespace()
	paramsOK := a.registerParameters(sig.Left)
	bodyOK := true
	if !body.IsEmpty() {
		bodyOK = a.analyzeSequence(body)
	}
	a.syms.ExitNamespace()

	return !redeclared && paramsOK && bodyOK
}

// registerParameters walks a ParameterList cons-cell chain, adding each
// parameter as an immutable, already-initialized symbol in the current
// namespace.
func (a *Analyzer) registerParameters(id ast.NodeID) bool {
	node := a.tree.Get(id)
	if node == nil || node.Left.IsEmpty() {
		return true
	}
	param := a.tree.Get(node.Left)
	label := a.tree.Get(param.Left)
	typeNode := a.tree.Get(param.Right)
	declaredType := typeNode.Anchor.Lexeme
	typeNode.Type = declaredType

	ok := true
	if a.syms.DeclaredInCurrentNamespace(label.Anchor.Lexeme) {
		ok = false
	} else {
		sym := a.syms.Add(label.Anchor.Lexeme, declaredType, false, label.Anchor.Loc)
		sym.HasInitialized = true
	}
	label.Type = declaredType
	param.Type = declaredType

	return ok && a.registerParameters(node.Right)
}
