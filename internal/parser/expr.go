package parser

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
	"opusc/internal/token"
)

// parseExpression is the entry point to the precedence ladder (low to
// high): logical-or, logical-and, comparison,
// additive, multiplicative, prefix, postfix, primary.
func (p *Parser) parseExpression() ast.NodeID {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() ast.NodeID {
	left := p.parseLogicalAnd()
	for p.at(token.OrOr) {
		op := p.advance()
		right := p.parseLogicalAnd()
		left = p.binary(op, left, right)
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.NodeID {
	left := p.parseComparison()
	for p.at(token.AndAnd) {
		op := p.advance()
		right := p.parseComparison()
		left = p.binary(op, left, right)
	}
	return left
}

func (p *Parser) parseComparison() ast.NodeID {
	left := p.parseAdditive()
	for p.atAny(token.Lt, token.Gt, token.LtEq, token.GtEq, token.EqEq, token.BangEq) {
		op := p.advance()
		right := p.parseAdditive()
		left = p.binary(op, left, right)
	}
	return left
}

func (p *Parser) parseAdditive() ast.NodeID {
	left := p.parseMultiplicative()
	for p.atAny(token.Plus, token.Minus) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = p.binary(op, left, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.NodeID {
	left := p.parsePrefix()
	for p.atAny(token.Star, token.Slash, token.Percent) {
		op := p.advance()
		right := p.parsePrefix()
		left = p.binary(op, left, right)
	}
	return left
}

func (p *Parser) binary(op token.Token, left, right ast.NodeID) ast.NodeID {
	node := p.tree.New(ast.Binary, op)
	p.tree.Get(node).Left = left
	p.tree.Get(node).Right = right
	return node
}

// parsePrefix handles right-associative unary `-` and `!` by recursing on
// itself before falling through to postfix/primary.
func (p *Parser) parsePrefix() ast.NodeID {
	if p.atAny(token.Minus, token.BangPrefix) {
		op := p.advance()
		operand := p.parsePrefix()
		node := p.tree.New(ast.Unary, op)
		p.tree.Get(node).Left = operand
		return node
	}
	return p.parsePostfix()
}

// parsePostfix loops over trailing `(...)` function calls and postfix `!`
// factorial, left-associative and chainable.
func (p *Parser) parsePostfix() ast.NodeID {
	expr := p.parsePrimary()
	for {
		switch {
		case p.at(token.LParen):
			parenTok := p.advance()
			args := p.parseArgumentList()
			if _, ok := p.expect(token.RParen, diag.SynMissingOpeningBracket, ")"); !ok {
				return p.errorNode(parenTok)
			}
			call := p.tree.New(ast.FunctionCall, parenTok)
			p.tree.Get(call).Left = expr
			p.tree.Get(call).Right = args
			expr = call
		case p.at(token.BangPostfix):
			op := p.advance()
			node := p.tree.New(ast.Postfix, op)
			p.tree.Get(node).Left = expr
			expr = node
		default:
			return expr
		}
	}
}

// parsePrimary handles literals, identifiers (including bare-identifier
// assignment), and parenthesized sub-expressions.
func (p *Parser) parsePrimary() ast.NodeID {
	switch {
	case p.at(token.Numeric), p.at(token.String):
		tok := p.advance()
		return p.tree.New(ast.Literal, tok)

	case p.at(token.Bool):
		tok := p.advance()
		return p.tree.New(ast.BooleanLiteral, tok)

	case p.at(token.Ident):
		tok := p.advance()
		identNode := p.tree.New(ast.Identifier, tok)
		if p.at(token.Assign) {
			assignTok := p.advance()
			rhs := p.parseExpression()
			node := p.tree.New(ast.Assignment, assignTok)
			p.tree.Get(node).Left = identNode
			p.tree.Get(node).Right = rhs
			return node
		}
		return identNode

	case p.at(token.LParen):
		p.advance()
		inner := p.parseExpression()
		// The lexer's bracket-nesting counters guarantee a matching ')'
		// exists somewhere in the stream; expect still reports if parsing
		// the inner expression left the cursor elsewhere.
		p.expect(token.RParen, diag.SynMissingOpeningBracket, ")")
		return inner

	default:
		anchor := p.cur
		p.reportSyntax(diag.SynMissingOperand, expectingAfter("operand", p.lastTok.Lexeme))
		if !p.at(token.Delimiter) && !p.at(token.EOF) {
			p.advance()
		}
		return p.errorNode(anchor)
	}
}
