package sema

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
	"opusc/internal/symbols"
)

// Analyzer walks a Program tree annotating every node with an inferred
// type, a foldability flag, and (when foldable) a constant value, while
// building the scoped symbol table.
type Analyzer struct {
	tree *ast.Tree
	syms *symbols.Table
	bag  *diag.Bag
}

// NewAnalyzer creates an Analyzer over tree, reporting into bag.
func NewAnalyzer(tree *ast.Tree, bag *diag.Bag) *Analyzer {
	return &Analyzer{tree: tree, syms: symbols.NewTable(), bag: bag}
}

// Symbols exposes the table built during Run, e.g. for the `symbols` debug
// command to dump after a successful analysis.
func (a *Analyzer) Symbols() *symbols.Table { return a.syms }

// Run performs the top-level walk: recurse over
// the Program cons-cells, dispatch each statement, and AND the results.
func (a *Analyzer) Run() bool {
	return a.analyzeSequence(a.tree.Root)
}

// analyzeSequence walks a Program or CodeBlock cons-cell chain — both share
// the same (Left = element, Right = rest, empty Left = terminal) shape.
func (a *Analyzer) analyzeSequence(id ast.NodeID) bool {
	node := a.tree.Get(id)
	if node == nil || node.Left.IsEmpty() {
		return true
	}
	stmtOK := a.analyzeStatement(node.Left)
	restOK := a.analyzeSequence(node.Right)
	return stmtOK && restOK
}

func (a *Analyzer) analyzeStatement(id ast.NodeID) bool {
	node := a.tree.Get(id)
	if node == nil {
		return true
	}
	switch node.Kind {
	case ast.VariableDeclaration, ast.ConstantDeclaration:
		return a.analyzeDeclaration(id)
	case ast.Assignment:
		return a.analyzeAssignment(id)
	case ast.ReturnStatement:
		return a.analyzeReturn(id)
	case ast.ConditionalStatement:
		return a.analyzeConditional(id)
	case ast.RepeatUntilStatement:
		return a.analyzeRepeatUntil(id)
	case ast.ForInStatement:
		return a.analyzeForIn(id)
	case ast.FunctionDefinition, ast.FunctionImplementation:
		return a.analyzeFunction(id)
	case ast.ErrorNode:
		return false
	default:
		_, ok := a.analyzeExpression(id)
		return ok
	}
}

func (a *Analyzer) analyzeReturn(id ast.NodeID) bool {
	node := a.tree.Get(id)
	if node.Left.IsEmpty() {
		node.Type = TypeAny
		return true
	}
	t, ok := a.analyzeExpression(node.Left)
	node.Type = t
	return ok
}
