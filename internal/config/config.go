// Package config loads the optional opus.toml project file: per-project
// defaults for diagnostics and lexer behavior, discovered by walking up from
// the source file's directory the way a project manifest normally is.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the decoded contents of an opus.toml file. Every field has a
// usable zero value, so a missing file is equivalent to an empty Config.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Lexer       LexerConfig       `toml:"lexer"`
}

// DiagnosticsConfig controls how diagnostics are capped and colored by
// default, overridable by CLI flags.
type DiagnosticsConfig struct {
	MaxDiagnostics int  `toml:"max_diagnostics"`
	Color          bool `toml:"color"`
}

// LexerConfig controls lexer-level defaults.
type LexerConfig struct {
	// MaxLexemeBytes is decoded from max_lexeme_bytes. Nothing in the
	// compiler reads it: lexemes are always capped at token.MaxLexeme.
	MaxLexemeBytes int `toml:"max_lexeme_bytes"`
}

// Manifest pairs a loaded Config with the path it came from and its
// containing directory, used to resolve any further relative paths.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Find walks upward from startDir looking for opus.toml, the way most build
// tools locate their project root. It returns ok=false, not an error, when
// no file is found anywhere up to the filesystem root.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "opus.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the opus.toml nearest to startDir. ok is false,
// with a nil error, when no project file exists — callers should fall back
// to Config's zero value in that case.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}
