package parser

import (
	"testing"

	"opusc/internal/ast"
	"opusc/internal/diag"
	"opusc/internal/lexer"
	"opusc/internal/source"
)

func parseSource(t *testing.T, src string) (*ast.Tree, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.opus", []byte(src))
	lx := lexer.New(fs.Get(id))
	bag := diag.NewBag(0)
	tree := Parse(lx, bag)
	return tree, bag
}

func firstStatement(tree *ast.Tree) *ast.Node {
	program := tree.Get(tree.Root)
	return tree.Get(program.Left)
}

func TestDeclarationWithAssignment(t *testing.T) {
	tree, bag := parseSource(t, "let quizGrade: Int = 100\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	stmt := firstStatement(tree)
	if stmt.Kind != ast.Assignment {
		t.Fatalf("got %s, want Assignment", stmt.Kind)
	}
	decl := tree.Get(stmt.Left)
	if decl.Kind != ast.ConstantDeclaration {
		t.Fatalf("got %s, want ConstantDeclaration", decl.Kind)
	}
	ident := tree.Get(decl.Left)
	if ident.Kind != ast.Identifier || ident.Anchor.Lexeme != "quizGrade" {
		t.Fatalf("unexpected identifier node: %+v", ident)
	}
	typeNode := tree.Get(decl.Right)
	if typeNode.Kind != ast.TypeAnnotation || typeNode.Anchor.Lexeme != "Int" {
		t.Fatalf("unexpected type node: %+v", typeNode)
	}
	lit := tree.Get(stmt.Right)
	if lit.Kind != ast.Literal || lit.Anchor.Lexeme != "100" {
		t.Fatalf("unexpected literal node: %+v", lit)
	}
}

func TestPrecedence(t *testing.T) {
	tree, bag := parseSource(t, "func f() -> Int {\nreturn 1 + 2 * 3\n}\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	impl := firstStatement(tree)
	if impl.Kind != ast.FunctionImplementation {
		t.Fatalf("got %s, want FunctionImplementation", impl.Kind)
	}
	block := tree.Get(impl.Right)
	ret := tree.Get(block.Left)
	if ret.Kind != ast.ReturnStatement {
		t.Fatalf("got %s, want ReturnStatement", ret.Kind)
	}
	plus := tree.Get(ret.Left)
	if plus.Kind != ast.Binary || plus.Anchor.Lexeme != "+" {
		t.Fatalf("got %+v, want Binary(+)", plus)
	}
	lhs := tree.Get(plus.Left)
	if lhs.Kind != ast.Literal || lhs.Anchor.Lexeme != "1" {
		t.Fatalf("unexpected lhs: %+v", lhs)
	}
	star := tree.Get(plus.Right)
	if star.Kind != ast.Binary || star.Anchor.Lexeme != "*" {
		t.Fatalf("got %+v, want Binary(*)", star)
	}
}

func TestNewlineInsideParensParsesAsOneStatement(t *testing.T) {
	tree, bag := parseSource(t, "var z: Int = (\n1\n+\n2\n)\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	stmt := firstStatement(tree)
	if stmt.Kind != ast.Assignment {
		t.Fatalf("got %s, want Assignment", stmt.Kind)
	}
	plus := tree.Get(stmt.Right)
	if plus.Kind != ast.Binary || plus.Anchor.Lexeme != "+" {
		t.Fatalf("got %+v, want Binary(+)", plus)
	}
}

func TestDeadBranchSourceParsesBothBranches(t *testing.T) {
	tree, bag := parseSource(t, "if true { var a: Int = 1 } else { var a: Int = 2 }\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	stmt := firstStatement(tree)
	if stmt.Kind != ast.ConditionalStatement {
		t.Fatalf("got %s, want ConditionalStatement", stmt.Kind)
	}
	body := tree.Get(stmt.Right)
	if body.Kind != ast.ConditionalBody {
		t.Fatalf("got %s, want ConditionalBody", body.Kind)
	}
	if body.Left.IsEmpty() || body.Right.IsEmpty() {
		t.Fatalf("expected both branches present in the AST")
	}
}

func TestUnresolvableTokenSynchronizes(t *testing.T) {
	tree, bag := parseSource(t, ": garbage\nvar x: Int = 1\n")
	if !bag.HasErrors() {
		t.Fatalf("expected a diagnostic for the unresolvable token")
	}
	program := tree.Get(tree.Root)
	first := tree.Get(program.Left)
	if first.Kind != ast.ErrorNode {
		t.Fatalf("got %s, want Error", first.Kind)
	}
	next := tree.Get(program.Right)
	second := tree.Get(next.Left)
	if second.Kind != ast.Assignment || tree.Get(second.Left).Kind != ast.VariableDeclaration {
		t.Fatalf("parser did not resynchronize: got %s", second.Kind)
	}
}

func TestNoTrailingNewlineStillParses(t *testing.T) {
	tree, bag := parseSource(t, "let x: Int = 1")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	stmt := firstStatement(tree)
	if stmt.Kind != ast.Assignment {
		t.Fatalf("got %s, want Assignment", stmt.Kind)
	}
}

func TestFunctionCallArguments(t *testing.T) {
	tree, bag := parseSource(t, "f(x: 1, y: 2)\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	call := firstStatement(tree)
	if call.Kind != ast.FunctionCall {
		t.Fatalf("got %s, want FunctionCall", call.Kind)
	}
	args := tree.Get(call.Right)
	if args.Kind != ast.ArgumentList {
		t.Fatalf("got %s, want ArgumentList", args.Kind)
	}
	firstArg := tree.Get(args.Left)
	if firstArg.Kind != ast.Argument {
		t.Fatalf("got %s, want Argument", firstArg.Kind)
	}
}

func TestPostfixFactorial(t *testing.T) {
	tree, bag := parseSource(t, "5!\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	stmt := firstStatement(tree)
	if stmt.Kind != ast.Postfix {
		t.Fatalf("got %s, want Postfix", stmt.Kind)
	}
}
