package parser

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
	"opusc/internal/token"
)

// parseProgram builds the right-leaning cons-cell chain: left = one
// statement, right = the rest of the program.
// The chain terminates in an empty Program node, inserted either at a real
// EOF or, per the "no trailing newline" boundary case, as if EOF were a
// delimiter.
func (p *Parser) parseProgram() ast.NodeID {
	p.skipDelimiters()
	if p.at(token.EOF) {
		return p.tree.New(ast.Program, p.cur)
	}

	anchor := p.cur
	stmt := p.parseStatement()

	node := p.tree.New(ast.Program, anchor)
	p.tree.Get(node).Left = stmt
	rest := p.parseProgram()
	p.tree.Get(node).Right = rest
	return node
}

// parseStatement dispatches on the leading token, one production per
// statement form.
func (p *Parser) parseStatement() ast.NodeID {
	switch p.cur.Kind {
	case token.KwVar, token.KwLet:
		return p.parseDeclarationStatement()
	case token.KwFunc:
		return p.parseFunctionStatement()
	case token.KwReturn:
		return p.parseReturnStatement()
	case token.KwIf:
		return p.parseConditionalStatement()
	case token.KwRepeat:
		return p.parseRepeatUntilStatement()
	case token.KwFor:
		return p.parseForInStatement()
	default:
		if isExpressionStarter(p.cur.Kind) {
			return p.parseExpressionStatement()
		}
		anchor := p.cur
		p.reportSyntax(diag.SynUnresolvable, "unresolvable token '"+p.cur.Lexeme+"'")
		p.synchronize()
		return p.errorNode(anchor)
	}
}

func isExpressionStarter(k token.Kind) bool {
	switch k {
	case token.Ident, token.Numeric, token.String, token.Bool, token.Minus, token.BangPrefix, token.LParen:
		return true
	default:
		return false
	}
}

// expectStatementEnd consumes the trailing Delimiter a statement-level
// production requires, tolerating EOF in its place: a file with no
// trailing newline still parses as if EOF were a delimiter. A closing '}'
// also ends the statement, without being consumed, so one-line blocks such
// as `{ var a: Int = 1 }` parse.
func (p *Parser) expectStatementEnd() bool {
	if p.at(token.Delimiter) {
		p.advance()
		return true
	}
	if p.at(token.EOF) || p.at(token.RBrace) {
		return true
	}
	p.reportSyntax(diag.SynMissingDelimiter, expectingAfter("newline", p.lastTok.Lexeme))
	return false
}

func (p *Parser) parseExpressionStatement() ast.NodeID {
	anchor := p.cur
	expr := p.parseExpression()
	if !p.expectStatementEnd() {
		p.synchronize()
		return p.errorNode(anchor)
	}
	return expr
}

func (p *Parser) parseReturnStatement() ast.NodeID {
	anchor := p.advance() // 'return'
	node := p.tree.New(ast.ReturnStatement, anchor)

	if isExpressionStarter(p.cur.Kind) {
		value := p.parseExpression()
		p.tree.Get(node).Left = value
	}
	if !p.expectStatementEnd() {
		p.synchronize()
		return p.errorNode(anchor)
	}
	return node
}
