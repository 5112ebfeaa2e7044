package main

import (
	"os"

	"github.com/spf13/cobra"

	"opusc/internal/diagfmt"
	"opusc/internal/lexer"
	"opusc/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.opus",
	Short: "Tokenize an Opus source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		os.Exit(exitIOFailure)
	}

	lx := lexer.New(fs.Get(id))
	diagfmt.FormatTokensPretty(os.Stdout, lx)
	return nil
}
