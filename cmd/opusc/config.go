package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"opusc/internal/config"
)

// resolveMaxDiagnostics returns the effective --max-diagnostics value: the
// flag if the user set it explicitly, otherwise the nearest opus.toml's
// [diagnostics].max_diagnostics, otherwise 0 (unbounded).
func resolveMaxDiagnostics(cmd *cobra.Command, path string) int {
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("max-diagnostics") {
		v, _ := flags.GetInt("max-diagnostics")
		return v
	}
	if manifest, ok, err := config.Load(filepath.Dir(path)); err == nil && ok {
		return manifest.Config.Diagnostics.MaxDiagnostics
	}
	v, _ := flags.GetInt("max-diagnostics")
	return v
}

// resolveColor decides whether to colorize pretty diagnostics: an explicit
// --color flag always wins, "auto" falls back to opus.toml's
// [diagnostics].color, and only then to a terminal check on out.
func resolveColor(cmd *cobra.Command, path string, out *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	}
	if manifest, ok, err := config.Load(filepath.Dir(path)); err == nil && ok {
		return manifest.Config.Diagnostics.Color
	}
	return isTerminal(out)
}
