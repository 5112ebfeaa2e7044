package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"opusc/internal/driver"
	"opusc/internal/source"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [flags] file.opus",
	Short: "Check a file and dump its final symbol table",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbols,
}

func runSymbols(cmd *cobra.Command, args []string) error {
	path := args[0]

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		os.Exit(exitIOFailure)
	}

	res := driver.CheckFile(fs, id, resolveMaxDiagnostics(cmd, path))
	if err := renderDiagnostics(cmd, res.Bag, fs, path); err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, res.Symbols.Symbols().Dump())

	if !res.OK {
		os.Exit(exitCodeForBag(res.Bag))
	}
	return nil
}
