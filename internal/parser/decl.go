package parser

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
	"opusc/internal/token"
)

// parseDeclarationStatement implements the declaration grammar:
// (var|let) Identifier ':' Identifier (Delimiter | '=' Expression Delimiter).
func (p *Parser) parseDeclarationStatement() ast.NodeID {
	anchor := p.advance() // 'var' or 'let'
	kind := ast.VariableDeclaration
	if anchor.Kind == token.KwLet {
		kind = ast.ConstantDeclaration
	}

	identTok, ok := p.expect(token.Ident, diag.SynMissingIdentifier, "identifier")
	if !ok {
		p.synchronize()
		return p.errorNode(anchor)
	}
	identNode := p.tree.New(ast.Identifier, identTok)

	if _, ok := p.expect(token.Colon, diag.SynMissingTypeAnnotation, ":"); !ok {
		p.synchronize()
		return p.errorNode(anchor)
	}
	typeTok, ok := p.expect(token.Ident, diag.SynMissingTypeName, "type name")
	if !ok {
		p.synchronize()
		return p.errorNode(anchor)
	}
	typeNode := p.tree.New(ast.TypeAnnotation, typeTok)

	declNode := p.tree.New(kind, anchor)
	p.tree.Get(declNode).Left = identNode
	p.tree.Get(declNode).Right = typeNode

	if p.at(token.Assign) {
		assignTok := p.advance()
		rhs := p.parseExpression()
		if !p.expectStatementEnd() {
			p.synchronize()
			return p.errorNode(anchor)
		}
		assignNode := p.tree.New(ast.Assignment, assignTok)
		p.tree.Get(assignNode).Left = declNode
		p.tree.Get(assignNode).Right = rhs
		return assignNode
	}

	if !p.expectStatementEnd() {
		p.synchronize()
		return p.errorNode(anchor)
	}
	return declNode
}
