package sema

import (
	"math"

	"opusc/internal/ast"
	"opusc/internal/token"
)

// Constant folding refuses to fold rather than wrap or saturate on integer
// overflow. safecast.Conv guards the narrowing conversions in lexer
// literal parsing and in the source package's file/line bookkeeping;
// same-width int64+int64
// arithmetic overflow has no narrowing conversion for it to check, so it is
// detected here with the standard sign-comparison / divide-back idiom.
func addOverflowsInt64(a, b int64) bool {
	sum := a + b
	return (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum > 0)
}

func subOverflowsInt64(a, b int64) bool {
	if b == math.MinInt64 {
		return a >= 0
	}
	return addOverflowsInt64(a, -b)
}

func mulOverflowsInt64(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	result := a * b
	return result/b != a
}

func asFloat(v ast.Value, t string) float64 {
	if t == TypeInt {
		return float64(v.Int)
	}
	return v.Float
}

// foldArithmetic computes `+ - * / %` for the given result type, refusing to
// fold on division/modulo by zero (no diagnostic) or overflow.
func foldArithmetic(op token.Kind, resultType, leftType, rightType string, l, r ast.Value) (ast.Value, bool) {
	if resultType == TypeFloat {
		lf, rf := asFloat(l, leftType), asFloat(r, rightType)
		switch op {
		case token.Plus:
			return ast.FloatValue(lf + rf), true
		case token.Minus:
			return ast.FloatValue(lf - rf), true
		case token.Star:
			return ast.FloatValue(lf * rf), true
		case token.Slash:
			if rf == 0 {
				return ast.Value{}, false
			}
			return ast.FloatValue(lf / rf), true
		case token.Percent:
			if rf == 0 {
				return ast.Value{}, false
			}
			return ast.FloatValue(math.Mod(lf, rf)), true
		}
		return ast.Value{}, false
	}

	li, ri := l.Int, r.Int
	switch op {
	case token.Plus:
		if addOverflowsInt64(li, ri) {
			return ast.Value{}, false
		}
		return ast.IntValue(li + ri), true
	case token.Minus:
		if subOverflowsInt64(li, ri) {
			return ast.Value{}, false
		}
		return ast.IntValue(li - ri), true
	case token.Star:
		if mulOverflowsInt64(li, ri) {
			return ast.Value{}, false
		}
		return ast.IntValue(li * ri), true
	case token.Slash:
		if ri == 0 {
			return ast.Value{}, false
		}
		return ast.IntValue(li / ri), true
	case token.Percent:
		if ri == 0 {
			return ast.Value{}, false
		}
		return ast.IntValue(li % ri), true
	}
	return ast.Value{}, false
}

// foldRelational computes `< > <= >=`, promoting to Float comparison when
// either operand is Float, matching the Float-if-either-operand-is-Float
// rule used for arithmetic.
func foldRelational(op token.Kind, leftType, rightType string, l, r ast.Value) ast.Value {
	if leftType == TypeInt && rightType == TypeInt {
		li, ri := l.Int, r.Int
		switch op {
		case token.Lt:
			return ast.BoolValue(li < ri)
		case token.Gt:
			return ast.BoolValue(li > ri)
		case token.LtEq:
			return ast.BoolValue(li <= ri)
		default:
			return ast.BoolValue(li >= ri)
		}
	}
	lf, rf := asFloat(l, leftType), asFloat(r, rightType)
	switch op {
	case token.Lt:
		return ast.BoolValue(lf < rf)
	case token.Gt:
		return ast.BoolValue(lf > rf)
	case token.LtEq:
		return ast.BoolValue(lf <= rf)
	default:
		return ast.BoolValue(lf >= rf)
	}
}

// foldEquality computes `== !=` between two operands of identical type.
func foldEquality(op token.Kind, operandType string, l, r ast.Value) ast.Value {
	var equal bool
	switch operandType {
	case TypeInt:
		equal = l.Int == r.Int
	case TypeFloat:
		equal = l.Float == r.Float
	case TypeBool:
		equal = l.Bool == r.Bool
	case TypeString:
		equal = l.String == r.String
	}
	if op == token.BangEq {
		return ast.BoolValue(!equal)
	}
	return ast.BoolValue(equal)
}

// foldFactorial computes n! iteratively. Negative operands, and operands at
// or beyond the implementation-defined 64-bit-safe bound of 20, always
// refuse to fold.
func foldFactorial(n int64) (int64, bool) {
	if n < 0 || n >= 20 {
		return 0, false
	}
	result := int64(1)
	for i := int64(2); i <= n; i++ {
		if mulOverflowsInt64(result, i) {
			return 0, false
		}
		result *= i
	}
	return result, true
}
