// Package driver wires the lexer, parser, and analyzer into the single-file
// and multi-file compilation entry points the CLI and UI call into.
package driver

import (
	"opusc/internal/ast"
	"opusc/internal/diag"
	"opusc/internal/lexer"
	"opusc/internal/parser"
	"opusc/internal/sema"
	"opusc/internal/source"
)

// Result is the outcome of running one file through every stage.
type Result struct {
	Path    string
	Tree    *ast.Tree
	Symbols *sema.Analyzer
	Bag     *diag.Bag
	OK      bool
}

// CheckFile runs Tokenize -> Parse -> Check over a file already registered
// in fs, sorting the resulting diagnostics for deterministic output.
func CheckFile(fs *source.FileSet, id source.FileID, maxDiagnostics int) Result {
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(fs.Get(id))
	tree := parser.Parse(lx, bag)
	analyzer := sema.NewAnalyzer(tree, bag)
	semaOK := analyzer.Run()
	bag.Sort()
	return Result{
		Path:    fs.Get(id).Path,
		Tree:    tree,
		Symbols: analyzer,
		Bag:     bag,
		OK:      semaOK && !bag.HasErrors(),
	}
}

// ParseFile runs Tokenize -> Parse only, for the `parse`/`tokenize` debug
// subcommands that don't need a symbol table.
func ParseFile(fs *source.FileSet, id source.FileID, maxDiagnostics int) (*ast.Tree, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(fs.Get(id))
	tree := parser.Parse(lx, bag)
	bag.Sort()
	return tree, bag
}
