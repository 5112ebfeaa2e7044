package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"opusc/internal/driver"
	"opusc/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.opus",
	Short: "Parse an Opus source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		os.Exit(exitIOFailure)
	}

	tree, bag := driver.ParseFile(fs, id, resolveMaxDiagnostics(cmd, path))

	if err := renderDiagnostics(cmd, bag, fs, path); err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, tree.Print(tree.Root))

	if bag.HasErrors() {
		os.Exit(exitSyntaxError)
	}
	return nil
}
