package parser

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
	"opusc/internal/token"
)

// parseCodeBlock parses a `{ ... }` body into a right-leaning cons-cell
// chain of statements, the same shape as Program.
func (p *Parser) parseCodeBlock() ast.NodeID {
	openTok, ok := p.expect(token.LBrace, diag.SynMissingOpeningCurly, "{")
	if !ok {
		p.synchronize()
		return p.errorNode(openTok)
	}
	return p.parseCodeBlockBody(openTok)
}

func (p *Parser) parseCodeBlockBody(anchor token.Token) ast.NodeID {
	p.skipDelimiters()
	if p.at(token.RBrace) {
		p.advance()
		return p.tree.New(ast.CodeBlock, anchor)
	}
	if p.at(token.EOF) {
		p.reportSyntax(diag.SynMissingDelimiter, expectingAfter("}", p.lastTok.Lexeme))
		return p.tree.New(ast.CodeBlock, anchor)
	}

	stmtAnchor := p.cur
	stmt := p.parseStatement()

	node := p.tree.New(ast.CodeBlock, stmtAnchor)
	p.tree.Get(node).Left = stmt
	rest := p.parseCodeBlockBody(anchor)
	p.tree.Get(node).Right = rest
	return node
}

// parseConditionalStatement implements
// `if Expression CodeBlock (else (if ... | CodeBlock))?`.
func (p *Parser) parseConditionalStatement() ast.NodeID {
	anchor := p.advance() // 'if'
	if p.at(token.Delimiter) || p.at(token.EOF) {
		p.reportSyntax(diag.SynMissingCondition, expectingAfter("condition", p.lastTok.Lexeme))
		p.synchronize()
		return p.errorNode(anchor)
	}
	cond := p.parseExpression()

	thenTok := p.cur
	thenBlock := p.parseCodeBlock()

	body := p.tree.New(ast.ConditionalBody, thenTok)
	p.tree.Get(body).Left = thenBlock

	p.skipDelimiters()
	if p.at(token.KwElse) {
		elseTok := p.advance()
		var elseBranch ast.NodeID
		if p.at(token.KwIf) {
			elseBranch = p.parseConditionalStatement()
		} else {
			elseBranch = p.parseCodeBlockFromKeyword(elseTok)
		}
		p.tree.Get(body).Right = elseBranch
	}

	node := p.tree.New(ast.ConditionalStatement, anchor)
	p.tree.Get(node).Left = cond
	p.tree.Get(node).Right = body
	return node
}

func (p *Parser) parseCodeBlockFromKeyword(_ token.Token) ast.NodeID {
	return p.parseCodeBlock()
}

// parseRepeatUntilStatement implements `repeat CodeBlock until Expression Delimiter`.
func (p *Parser) parseRepeatUntilStatement() ast.NodeID {
	anchor := p.advance() // 'repeat'
	body := p.parseCodeBlock()

	if _, ok := p.expect(token.KwUntil, diag.SynMissingUntilCondition, "until"); !ok {
		p.synchronize()
		return p.errorNode(anchor)
	}
	if p.at(token.Delimiter) || p.at(token.EOF) {
		p.reportSyntax(diag.SynMissingCondition, expectingAfter("condition", p.lastTok.Lexeme))
		p.synchronize()
		return p.errorNode(anchor)
	}
	cond := p.parseExpression()
	if !p.expectStatementEnd() {
		p.synchronize()
		return p.errorNode(anchor)
	}

	node := p.tree.New(ast.RepeatUntilStatement, anchor)
	p.tree.Get(node).Left = body
	p.tree.Get(node).Right = cond
	return node
}

// parseForInStatement implements `for Identifier in Expression CodeBlock`.
func (p *Parser) parseForInStatement() ast.NodeID {
	anchor := p.advance() // 'for'
	identTok, ok := p.expect(token.Ident, diag.SynMissingIdentifier, "identifier")
	if !ok {
		p.synchronize()
		return p.errorNode(anchor)
	}
	identNode := p.tree.New(ast.Identifier, identTok)

	inTok, ok := p.expect(token.KwIn, diag.SynMissingInStatement, "in")
	if !ok {
		p.synchronize()
		return p.errorNode(anchor)
	}
	source := p.parseExpression()

	ctx := p.tree.New(ast.ForInContext, inTok)
	p.tree.Get(ctx).Left = identNode
	p.tree.Get(ctx).Right = source

	body := p.parseCodeBlock()

	node := p.tree.New(ast.ForInStatement, anchor)
	p.tree.Get(node).Left = ctx
	p.tree.Get(node).Right = body
	return node
}
