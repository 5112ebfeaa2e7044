package sema

import (
	"strconv"
	"strings"

	"opusc/internal/ast"
	"opusc/internal/diag"
	"opusc/internal/token"
)

// analyzeExpression produces the two annotations every expression node
// every expression node: an inferred-type string and a foldability flag
// with, when foldable, the folded value. It returns the inferred type and
// whether analysis succeeded (no type error on this subtree).
func (a *Analyzer) analyzeExpression(id ast.NodeID) (string, bool) {
	node := a.tree.Get(id)
	if node == nil {
		return TypeAny, true
	}

	switch node.Kind {
	case ast.Literal:
		return a.analyzeLiteral(node)
	case ast.BooleanLiteral:
		node.Type = TypeBool
		node.Foldable = true
		node.Value = ast.BoolValue(node.Anchor.Lexeme == "true")
		return TypeBool, true
	case ast.Identifier:
		return a.analyzeIdentifierExpr(node)
	case ast.Assignment:
		ok := a.analyzeAssignment(id)
		return node.Type, ok
	case ast.Binary:
		return a.analyzeBinary(node)
	case ast.Unary:
		return a.analyzeUnary(node)
	case ast.Postfix:
		return a.analyzePostfix(node)
	case ast.FunctionCall:
		return a.analyzeCall(node)
	case ast.ErrorNode:
		return TypeAny, false
	default:
		node.Type = TypeAny
		node.Foldable = false
		return TypeAny, true
	}
}

func (a *Analyzer) analyzeLiteral(node *ast.Node) (string, bool) {
	lexeme := node.Anchor.Lexeme
	if node.Anchor.Kind == token.String {
		node.Type = TypeString
		node.Foldable = true
		node.Value = ast.StringValue(unquote(lexeme))
		return TypeString, true
	}
	if strings.Contains(lexeme, ".") {
		v, err := strconv.ParseFloat(lexeme, 64)
		node.Type = TypeFloat
		node.Foldable = err == nil
		node.Value = ast.FloatValue(v)
		return TypeFloat, true
	}
	v, err := strconv.ParseInt(lexeme, 10, 64)
	node.Type = TypeInt
	node.Foldable = err == nil
	node.Value = ast.IntValue(v)
	return TypeInt, true
}

// unquote strips the surrounding quotes a string literal's lexeme carries;
// escape sequences are preserved literally.
func unquote(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}

func (a *Analyzer) analyzeIdentifierExpr(node *ast.Node) (string, bool) {
	name := node.Anchor.Lexeme
	sym := a.syms.LookupVisible(name)
	if sym == nil {
		a.reportSema(diag.SemaUndeclaredVariable, node.Anchor, undeclaredMessage(name, node.Anchor))
		node.Type = TypeAny
		node.Foldable = false
		return TypeAny, false
	}
	node.Type = sym.Type
	node.Foldable = sym.HasFoldedValue
	if sym.HasFoldedValue {
		node.Value = sym.Value
	}
	return sym.Type, true
}

func (a *Analyzer) analyzeBinary(node *ast.Node) (string, bool) {
	leftType, leftOK := a.analyzeExpression(node.Left)
	rightType, rightOK := a.analyzeExpression(node.Right)
	leftNode, rightNode := a.tree.Get(node.Left), a.tree.Get(node.Right)

	if !leftOK || !rightOK {
		node.Type = TypeAny
		node.Foldable = false
		return TypeAny, false
	}

	switch node.Anchor.Kind {
	case token.Plus, token.Minus, token.Star, token.Slash, token.Percent:
		if !isNumeric(leftType) || !isNumeric(rightType) {
			a.reportSema(diag.SemaOperationTypeMismatch, node.Anchor, operandMismatchMessage(node.Anchor.Lexeme, node.Anchor))
			node.Type = TypeAny
			node.Foldable = false
			return TypeAny, false
		}
		resultType := TypeInt
		if leftType == TypeFloat || rightType == TypeFloat {
			resultType = TypeFloat
		}
		node.Type = resultType
		if leftNode.Foldable && rightNode.Foldable {
			if v, ok := foldArithmetic(node.Anchor.Kind, resultType, leftType, rightType, leftNode.Value, rightNode.Value); ok {
				node.Foldable = true
				node.Value = v
				return resultType, true
			}
		}
		node.Foldable = false
		return resultType, true

	case token.AndAnd, token.OrOr:
		if leftType != TypeBool || rightType != TypeBool {
			a.reportSema(diag.SemaOperationTypeMismatch, node.Anchor, operandMismatchMessage(node.Anchor.Lexeme, node.Anchor))
			node.Type = TypeAny
			node.Foldable = false
			return TypeAny, false
		}
		node.Type = TypeBool
		if leftNode.Foldable && rightNode.Foldable {
			node.Foldable = true
			if node.Anchor.Kind == token.AndAnd {
				node.Value = ast.BoolValue(leftNode.Value.Bool && rightNode.Value.Bool)
			} else {
				node.Value = ast.BoolValue(leftNode.Value.Bool || rightNode.Value.Bool)
			}
			return TypeBool, true
		}
		node.Foldable = false
		return TypeBool, true

	case token.EqEq, token.BangEq:
		if leftType != rightType {
			a.reportSema(diag.SemaOperationTypeMismatch, node.Anchor, operandMismatchMessage(node.Anchor.Lexeme, node.Anchor))
			node.Type = TypeAny
			node.Foldable = false
			return TypeAny, false
		}
		node.Type = TypeBool
		if leftNode.Foldable && rightNode.Foldable {
			node.Foldable = true
			node.Value = foldEquality(node.Anchor.Kind, leftType, leftNode.Value, rightNode.Value)
			return TypeBool, true
		}
		node.Foldable = false
		return TypeBool, true

	case token.Lt, token.Gt, token.LtEq, token.GtEq:
		if !isNumeric(leftType) || !isNumeric(rightType) {
			a.reportSema(diag.SemaOperationTypeMismatch, node.Anchor, operandMismatchMessage(node.Anchor.Lexeme, node.Anchor))
			node.Type = TypeAny
			node.Foldable = false
			return TypeAny, false
		}
		node.Type = TypeBool
		if leftNode.Foldable && rightNode.Foldable {
			node.Foldable = true
			node.Value = foldRelational(node.Anchor.Kind, leftType, rightType, leftNode.Value, rightNode.Value)
			return TypeBool, true
		}
		node.Foldable = false
		return TypeBool, true
	}

	node.Type = TypeAny
	node.Foldable = false
	return TypeAny, false
}

func (a *Analyzer) analyzeUnary(node *ast.Node) (string, bool) {
	operandType, ok := a.analyzeExpression(node.Left)
	operand := a.tree.Get(node.Left)
	if !ok {
		node.Type = TypeAny
		node.Foldable = false
		return TypeAny, false
	}

	switch node.Anchor.Kind {
	case token.Minus:
		if !isNumeric(operandType) {
			a.reportSema(diag.SemaOperationTypeMismatch, node.Anchor, operandMismatchMessage("-", node.Anchor))
			node.Type = TypeAny
			node.Foldable = false
			return TypeAny, false
		}
		node.Type = operandType
		if operand.Foldable {
			node.Foldable = true
			if operandType == TypeInt {
				node.Value = ast.IntValue(-operand.Value.Int)
			} else {
				node.Value = ast.FloatValue(-operand.Value.Float)
			}
			return operandType, true
		}
		node.Foldable = false
		return operandType, true

	case token.BangPrefix:
		if operandType != TypeBool {
			a.reportSema(diag.SemaOperationTypeMismatch, node.Anchor, operandMismatchMessage("!", node.Anchor))
			node.Type = TypeAny
			node.Foldable = false
			return TypeAny, false
		}
		node.Type = TypeBool
		if operand.Foldable {
			node.Foldable = true
			node.Value = ast.BoolValue(!operand.Value.Bool)
			return TypeBool, true
		}
		node.Foldable = false
		return TypeBool, true
	}

	node.Type = TypeAny
	node.Foldable = false
	return TypeAny, false
}

func (a *Analyzer) analyzePostfix(node *ast.Node) (string, bool) {
	operandType, ok := a.analyzeExpression(node.Left)
	operand := a.tree.Get(node.Left)
	if !ok {
		node.Type = TypeAny
		node.Foldable = false
		return TypeAny, false
	}
	if operandType != TypeInt {
		a.reportSema(diag.SemaOperationTypeMismatch, node.Anchor, operandMismatchMessage("!", node.Anchor))
		node.Type = TypeAny
		node.Foldable = false
		return TypeAny, false
	}
	node.Type = TypeInt
	if operand.Foldable {
		if v, ok := foldFactorial(operand.Value.Int); ok {
			node.Foldable = true
			node.Value = ast.IntValue(v)
			return TypeInt, true
		}
	}
	node.Foldable = false
	return TypeInt, true
}

// analyzeCall resolves the callee's declared return type, when it names a
// known function symbol, and analyzes every argument expression so each
// carries its own annotations. Calls are never foldable.
func (a *Analyzer) analyzeCall(node *ast.Node) (string, bool) {
	calleeType := TypeAny
	callee := a.tree.Get(node.Left)
	if callee != nil && callee.Kind == ast.Identifier {
		if sym := a.syms.LookupGlobal(callee.Anchor.Lexeme); sym != nil {
			calleeType = sym.Type
		}
		callee.Type = calleeType
		callee.Foldable = false
	}

	ok := a.analyzeArgumentList(node.Right)
	node.Type = calleeType
	node.Foldable = false
	return calleeType, ok
}

func (a *Analyzer) analyzeArgumentList(id ast.NodeID) bool {
	node := a.tree.Get(id)
	if node == nil || node.Left.IsEmpty() {
		return true
	}
	arg := a.tree.Get(node.Left)
	argType, ok := a.analyzeExpression(arg.Right)
	arg.Type = argType
	arg.Foldable = a.tree.Get(arg.Right).Foldable
	restOK := a.analyzeArgumentList(node.Right)
	return ok && restOK
}
