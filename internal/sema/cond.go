package sema

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
)

// analyzeConditional implements dead-branch elimination: when
// the condition folds to a constant, only the taken branch is ever entered —
// its scope is opened, analyzed, and closed — while the other branch stays
// in the tree unanalyzed and its scope is never opened at all.
func (a *Analyzer) analyzeConditional(id ast.NodeID) bool {
	node := a.tree.Get(id)
	condType, condOK := a.analyzeExpression(node.Left)
	if !condOK {
		return false
	}
	if condType != TypeBool {
		a.reportSema(diag.SemaInvalidCondition, a.tree.Get(node.Left).Anchor, invalidConditionMessage(a.tree.Get(node.Left).Anchor))
		return false
	}

	body := a.tree.Get(node.Right)
	thenBlock := body.Left
	elseBranch := body.Right
	condNode := a.tree.Get(node.Left)

	if condNode.Foldable {
		if condNode.Value.Bool {
			return a.analyzeBranch(thenBlock)
		}
		return a.analyzeElseBranch(elseBranch)
	}

	thenOK := a.analyzeBranch(thenBlock)
	elseOK := a.analyzeElseBranch(elseBranch)
	return thenOK && elseOK
}

func (a *Analyzer) analyzeBranch(codeBlockID ast.NodeID) bool {
	if codeBlockID.IsEmpty() {
		return true
	}
	a.syms.EnterNamespace()
	ok := a.analyzeSequence(codeBlockID)
	a.syms.ExitNamespace()
	return ok
}

// analyzeElseBranch dispatches an `else if` chain back into
// analyzeConditional, or a bare `else` block into analyzeBranch.
func (a *Analyzer) analyzeElseBranch(id ast.NodeID) bool {
	if id.IsEmpty() {
		return true
	}
	node := a.tree.Get(id)
	if node.Kind == ast.ConditionalStatement {
		return a.analyzeConditional(id)
	}
	return a.analyzeBranch(id)
}

// analyzeRepeatUntil analyzes the loop body and its until-condition in the
// same namespace, so the condition can reference variables the body just
// declared, then checks the condition types to Bool.
func (a *Analyzer) analyzeRepeatUntil(id ast.NodeID) bool {
	node := a.tree.Get(id)

	a.syms.EnterNamespace()
	bodyOK := a.analyzeSequence(node.Left)
	condType, condOK := a.analyzeExpression(node.Right)
	a.syms.ExitNamespace()

	if !condOK {
		return false
	}
	if condType != TypeBool {
		a.reportSema(diag.SemaInvalidCondition, a.tree.Get(node.Right).Anchor, invalidConditionMessage(a.tree.Get(node.Right).Anchor))
		return false
	}
	return bodyOK
}

// analyzeForIn analyzes the source expression in the enclosing scope, then
// opens a namespace for the loop variable and body.
func (a *Analyzer) analyzeForIn(id ast.NodeID) bool {
	node := a.tree.Get(id)
	ctx := a.tree.Get(node.Left)
	loopVar := a.tree.Get(ctx.Left)

	_, sourceOK := a.analyzeExpression(ctx.Right)

	a.syms.EnterNamespace()
	sym := a.syms.Add(loopVar.Anchor.Lexeme, TypeAny, false, loopVar.Anchor.Loc)
	sym.HasInitialized = true
	loopVar.Type = TypeAny
	bodyOK := a.analyzeSequence(node.Right)
	a.syms.ExitNamespace()

	return sourceOK && bodyOK
}
