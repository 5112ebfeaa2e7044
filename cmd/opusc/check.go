package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"opusc/internal/diagfmt"
	"opusc/internal/driver"
	"opusc/internal/source"
	"opusc/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.opus...",
	Short: "Run the full tokenize/parse/check pipeline over one or more files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for multi-file runs (0=auto)")
	checkCmd.Flags().Bool("ui", false, "show an interactive progress view for multi-file runs")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runCheckSingle(cmd, args[0])
	}
	return runCheckBatch(cmd, args)
}

func runCheckSingle(cmd *cobra.Command, path string) error {
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

// runCheckBatch fans the given files out across internal/driver.CheckAll,
// optionally driving a Bubble Tea progress view fed by the same event
// channel, then prints every file's diagnostics once the batch completes.
func runCheckBatch(cmd *cobra.Command, paths []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	useUI, _ := cmd.Flags().GetBool("ui")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	events := make(chan driver.Event, len(paths))
	group, ctx := errgroup.WithContext(cmd.Context())

	var results []driver.BatchResult
	group.Go(func() error {
		var err error
		results, err = driver.CheckAll(ctx, paths, maxDiagnostics, jobs, events)
		return err
	})

	if useUI && isTerminal(os.Stdout) {
		program := tea.NewProgram(ui.NewProgressModel("opusc check", paths, events))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("progress UI: %w", err)
		}
	} else {
		for range events {
			// no interactive UI requested; drain silently and report at the end
		}
	}

	if err := group.Wait(); err != nil && err != context.Canceled {
		return fmt.Errorf("check: %w", err)
	}

	failed := false
	worstCode := exitOK
	for _, r := range results {
		if r.Result.Bag == nil {
			fmt.Fprintf(os.Stderr, "%s: failed to load\n", r.Path)
			failed = true
			worstCode = max(worstCode, exitIOFailure)
			continue
		}
		if r.Result.Bag.Len() > 0 {
			printBatchDiagnostics(cmd, r)
		}
		if !r.Result.OK {
			failed = true
			worstCode = max(worstCode, exitCodeForBag(r.Result.Bag))
		}
	}

	if failed {
		os.Exit(worstCode)
	}
	os.Exit(exitOK)
	return nil
}

func printBatchDiagnostics(cmd *cobra.Command, r driver.BatchResult) {
	format, _ := cmd.Root().PersistentFlags().GetString("format")
	fmt.Fprintf(os.Stderr, "== %s ==\n", r.Path)
	switch format {
	case "json":
		_ = diagfmt.FormatJSON(os.Stderr, r.Result.Bag, diagfmt.JSONOpts{Pretty: true})
	case "msgpack":
		_ = diagfmt.FormatMsgpack(os.Stderr, r.Result.Bag)
	default:
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on"
		diagfmt.Pretty(os.Stderr, r.Result.Bag, nil, diagfmt.PrettyOpts{Color: useColor, Context: false})
	}
}
