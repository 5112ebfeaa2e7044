// Package parser implements the recursive-descent, precedence-climbing
// parser that turns a token stream into a Program AST with panic-mode error
// recovery.
package parser

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
	"opusc/internal/lexer"
	"opusc/internal/source"
	"opusc/internal/token"
)

// Parser holds per-file parsing state: the token source, the tree being
// built, the diagnostic sink, and one token of lookahead.
type Parser struct {
	lx   *lexer.Lexer
	tree *ast.Tree
	bag  *diag.Bag

	cur     token.Token
	lastTok token.Token
}

// Parse runs the parser to completion over lx and returns the resulting
// Program tree. Diagnostics accumulate in bag; parsing itself never fails —
// malformed statements are replaced with Error nodes and parsing continues.
func Parse(lx *lexer.Lexer, bag *diag.Bag) *ast.Tree {
	p := &Parser{
		lx:   lx,
		tree: ast.NewTree(64),
		bag:  bag,
	}
	p.next()
	p.tree.Root = p.parseProgram()

	for _, be := range lx.Finalize() {
		p.bag.Add(diag.NewError(diag.LayerLexer, bracketCode(be.Kind), be.Span, be.Loc, bracketMessage(be.Kind, be.Loc)))
	}
	return p.tree
}

// next pulls the following token from the lexer, transparently reporting
// and skipping any token-level lexer errors so the parser only ever sees
// tokens it can act on (stream-level bracket errors are handled separately,
// once, at EOF).
func (p *Parser) next() token.Token {
	p.lastTok = p.cur
	for {
		tok := p.lx.Next()
		if tok.Kind != token.Error {
			p.cur = tok
			return p.lastTok
		}
		p.bag.Add(diag.NewError(diag.LayerLexer, lexErrorCode(tok.ErrKind), tok.Span, tok.Loc,
			lexErrorMessage(tok)).WithLexeme(tok.Lexeme))
	}
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) atAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	tok := p.cur
	p.next()
	return tok
}

// expect consumes the current token if it matches k; otherwise it reports
// code with a "Expecting 'X' after 'Y'"-shaped message and returns ok=false
// without consuming anything.
func (p *Parser) expect(k token.Kind, code diag.Code, expectedLexeme string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.reportSyntax(code, expectingAfter(expectedLexeme, p.cur.Lexeme))
	return token.Token{}, false
}

func (p *Parser) reportSyntax(code diag.Code, msg string) {
	p.bag.Add(diag.NewError(diag.LayerParser, code, p.cur.Span, p.cur.Loc, msg))
}

// synchronize implements panic-mode recovery: drain tokens
// until a Delimiter or EOF, consuming the Delimiter if present.
func (p *Parser) synchronize() {
	for !p.at(token.Delimiter) && !p.at(token.EOF) {
		p.advance()
	}
	if p.at(token.Delimiter) {
		p.advance()
	}
}

// errorNode builds an Error AST node anchored at the token where recovery
// began, used as the substituted subtree for a failed production.
func (p *Parser) errorNode(anchor token.Token) ast.NodeID {
	return p.tree.New(ast.ErrorNode, anchor)
}

// skipDelimiters consumes any run of orphan Delimiter tokens between
// statements.
func (p *Parser) skipDelimiters() {
	for p.at(token.Delimiter) {
		p.advance()
	}
}

func expectingAfter(expected, seenLexeme string) string {
	if seenLexeme == "" {
		seenLexeme = "<end of input>"
	}
	return "Expecting '" + expected + "' after '" + seenLexeme + "'"
}

// emptySpan returns a zero-length span at the parser's current position,
// useful for anchoring diagnostics that have no single offending token.
func (p *Parser) emptySpan() source.Span {
	return source.Span{File: p.cur.Span.File, Start: p.cur.Span.Start, End: p.cur.Span.Start}
}
