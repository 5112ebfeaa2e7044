package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindWalksUpToParentDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "opus.toml"), []byte("[diagnostics]\nmax_diagnostics = 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatalf("expected to find opus.toml in an ancestor directory")
	}
	if filepath.Dir(path) != root {
		t.Fatalf("expected manifest directory %q, got %q", root, filepath.Dir(path))
	}
}

func TestFindReturnsNotOKWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := Find(dir)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		t.Fatalf("expected no opus.toml to be found")
	}
}

func TestLoadDecodesKnownKeys(t *testing.T) {
	dir := t.TempDir()
	content := "[diagnostics]\nmax_diagnostics = 25\ncolor = true\n\n[lexer]\nmax_lexeme_bytes = 256\n"
	if err := os.WriteFile(filepath.Join(dir, "opus.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	manifest, ok, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatalf("expected opus.toml to load")
	}
	if manifest.Config.Diagnostics.MaxDiagnostics != 25 {
		t.Fatalf("got MaxDiagnostics=%d, want 25", manifest.Config.Diagnostics.MaxDiagnostics)
	}
	if !manifest.Config.Diagnostics.Color {
		t.Fatalf("expected Color=true")
	}
	if manifest.Config.Lexer.MaxLexemeBytes != 256 {
		t.Fatalf("got MaxLexemeBytes=%d, want 256", manifest.Config.Lexer.MaxLexemeBytes)
	}
}
