package parser

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
	"opusc/internal/token"
)

// parseFunctionStatement implements
// `func Identifier '(' ParameterList? ')' '->' Identifier (CodeBlock)?`.
// A trailing code block promotes the definition to a FunctionImplementation.
func (p *Parser) parseFunctionStatement() ast.NodeID {
	anchor := p.advance() // 'func'

	nameTok, ok := p.expect(token.Ident, diag.SynMissingFunctionName, "function name")
	if !ok {
		p.synchronize()
		return p.errorNode(anchor)
	}
	nameNode := p.tree.New(ast.Identifier, nameTok)

	parenTok, ok := p.expect(token.LParen, diag.SynMissingOpeningBracket, "(")
	if !ok {
		p.synchronize()
		return p.errorNode(anchor)
	}
	params := p.parseParameterList()
	if _, ok := p.expect(token.RParen, diag.SynMissingOpeningBracket, ")"); !ok {
		p.synchronize()
		return p.errorNode(anchor)
	}
	if _, ok := p.expect(token.Arrow, diag.SynMissingRightArrow, "->"); !ok {
		p.synchronize()
		return p.errorNode(anchor)
	}
	returnTypeTok, ok := p.expect(token.Ident, diag.SynMissingReturnType, "return type")
	if !ok {
		p.synchronize()
		return p.errorNode(anchor)
	}
	returnType := p.tree.New(ast.FunctionReturnType, returnTypeTok)

	sig := p.tree.New(ast.FunctionSignature, parenTok)
	p.tree.Get(sig).Left = params
	p.tree.Get(sig).Right = returnType

	def := p.tree.New(ast.FunctionDefinition, anchor)
	p.tree.Get(def).Left = nameNode
	p.tree.Get(def).Right = sig

	if p.at(token.LBrace) {
		blockTok := p.cur
		block := p.parseCodeBlock()
		impl := p.tree.New(ast.FunctionImplementation, blockTok)
		p.tree.Get(impl).Left = def
		p.tree.Get(impl).Right = block
		return impl
	}

	if !p.expectStatementEnd() {
		p.synchronize()
		return p.errorNode(anchor)
	}
	return def
}

// parseParameterList parses a possibly-empty, right-leaning cons-cell chain
// of Parameter nodes, terminated by an empty ParameterList.
func (p *Parser) parseParameterList() ast.NodeID {
	anchor := p.cur
	if p.at(token.RParen) {
		return p.tree.New(ast.ParameterList, anchor)
	}

	param := p.parseParameter()
	node := p.tree.New(ast.ParameterList, anchor)
	p.tree.Get(node).Left = param

	if p.at(token.Comma) {
		p.advance()
		rest := p.parseParameterList()
		p.tree.Get(node).Right = rest
	} else {
		terminal := p.tree.New(ast.ParameterList, p.cur)
		p.tree.Get(node).Right = terminal
	}
	return node
}

func (p *Parser) parseParameter() ast.NodeID {
	labelTok, ok := p.expect(token.Ident, diag.SynMissingParameterLabel, "parameter name")
	if !ok {
		return p.errorNode(labelTok)
	}
	labelNode := p.tree.New(ast.ParameterLabel, labelTok)

	if _, ok := p.expect(token.Colon, diag.SynMissingColonAfterLabel, ":"); !ok {
		return p.errorNode(labelTok)
	}
	typeTok, ok := p.expect(token.Ident, diag.SynMissingTypeName, "type name")
	if !ok {
		return p.errorNode(labelTok)
	}
	typeNode := p.tree.New(ast.TypeAnnotation, typeTok)

	param := p.tree.New(ast.Parameter, labelTok)
	p.tree.Get(param).Left = labelNode
	p.tree.Get(param).Right = typeNode
	return param
}

// parseArgumentList parses a possibly-empty, right-leaning cons-cell chain
// of labeled Argument nodes: `Identifier ':' Expression`.
func (p *Parser) parseArgumentList() ast.NodeID {
	anchor := p.cur
	if p.at(token.RParen) {
		return p.tree.New(ast.ArgumentList, anchor)
	}

	arg := p.parseArgument()
	node := p.tree.New(ast.ArgumentList, anchor)
	p.tree.Get(node).Left = arg

	if p.at(token.Comma) {
		p.advance()
		rest := p.parseArgumentList()
		p.tree.Get(node).Right = rest
	} else {
		terminal := p.tree.New(ast.ArgumentList, p.cur)
		p.tree.Get(node).Right = terminal
	}
	return node
}

func (p *Parser) parseArgument() ast.NodeID {
	labelTok, ok := p.expect(token.Ident, diag.SynMissingArgumentLabel, "argument label")
	if !ok {
		return p.errorNode(labelTok)
	}
	labelNode := p.tree.New(ast.ArgumentLabel, labelTok)

	if _, ok := p.expect(token.Colon, diag.SynMissingColonAfterLabel, ":"); !ok {
		return p.errorNode(labelTok)
	}
	if !isExpressionStarter(p.cur.Kind) {
		p.reportSyntax(diag.SynMissingArgument, expectingAfter("argument", p.lastTok.Lexeme))
		return p.errorNode(labelTok)
	}
	value := p.parseExpression()

	arg := p.tree.New(ast.Argument, labelTok)
	p.tree.Get(arg).Left = labelNode
	p.tree.Get(arg).Right = value
	return arg
}
