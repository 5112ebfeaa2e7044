package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"opusc/internal/diag"
	"opusc/internal/diagfmt"
	"opusc/internal/driver"
	"opusc/internal/source"
	"opusc/internal/version"
)

// Exit codes distinguish why a run failed, beyond cobra's own 0/1 split:
// I/O failure, a source file that isn't .opus, a lexer/parser error, or an
// analyzer error each get a distinct value so scripts can branch on them.
const (
	exitOK           = 0
	exitIOFailure    = 2
	exitBadExtension = 3
	exitSyntaxError  = 4
	exitSemaError    = 5
)

var rootCmd = &cobra.Command{
	Use:   "opusc [flags] file.opus",
	Short: "Opus language front-end compiler",
	Long:  `opusc tokenizes, parses, and type-checks Opus source files.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoot,
}

func init() {
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (0=unbounded)")
	rootCmd.PersistentFlags().String("format", "pretty", "diagnostic output format (pretty|json|msgpack)")

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	rootCmd.Version = version.Version

	if err := rootCmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}

// runRoot implements the bare `opusc file.opus` invocation: tokenize,
// parse, and check one source file, printing diagnostics and exiting with a
// code that identifies which stage first failed.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s <source_file.opus>\n", cmd.Root().Name())
		os.Exit(exitBadExtension)
	}
	path := args[0]

	if filepath.Ext(path) != ".opus" {
		fmt.Fprintf(os.Stderr, "%s: not the source code (expected a .opus file)\n", path)
		os.Exit(exitBadExtension)
	}

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

	if res.OK {
		os.Exit(exitOK)
	}
	os.Exit(exitCodeForBag(res.Bag))
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// exitCodeForBag distinguishes lexer/parser failures from analyzer failures
// so each gets its own exit code; a syntax error takes priority since the
// analyzer never ran to completion against a broken tree.
func exitCodeForBag(bag *diag.Bag) int {
	for _, d := range bag.Items() {
		if d.Severity < diag.SevError {
			continue
		}
		if d.Layer == diag.LayerLexer || d.Layer == diag.LayerParser {
			return exitSyntaxError
		}
	}
	return exitSemaError
}

// renderDiagnostics writes bag to stderr in the requested format, honoring
// --quiet and --color.
func renderDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, path string) error {
	if bag.Len() == 0 {
		return nil
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet {
		return nil
	}
	format, _ := cmd.Root().PersistentFlags().GetString("format")
	switch format {
	case "pretty":
		useColor := resolveColor(cmd, path, os.Stderr)
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{Color: useColor, Context: true})
		return nil
	case "json":
		return diagfmt.FormatJSON(os.Stderr, bag, diagfmt.JSONOpts{Pretty: true})
	case "msgpack":
		return diagfmt.FormatMsgpack(os.Stderr, bag)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
