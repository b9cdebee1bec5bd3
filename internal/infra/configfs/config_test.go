package configfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ignaskar/pngcoder/internal/domain"
)

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Partial config (no journal/output)
	content := []byte("pngcoder:\n  backup:\n    enabled: true\n")
	if err := os.WriteFile(filepath.Join(root, "pngcoder.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if !cfg.Backup.Enabled {
		t.Fatalf("expected backup=true, got=%v", cfg.Backup.Enabled)
	}
	if cfg.Journal.Enabled {
		t.Fatalf("expected journal disabled by default")
	}
	if cfg.Journal.Dir != ".pngcoder/journal" {
		t.Fatalf("expected default journal dir, got=%s", cfg.Journal.Dir)
	}
	if cfg.Output.Format != "table" {
		t.Fatalf("expected default format=table, got=%s", cfg.Output.Format)
	}
}

func TestLoadConfig_FullFile(t *testing.T) {
	root := t.TempDir()
	content := []byte(`pngcoder:
  backup:
    enabled: false
  journal:
    enabled: true
    dir: audit
  output:
    format: plain
`)
	if err := os.WriteFile(filepath.Join(root, "pngcoder.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Backup.Enabled {
		t.Errorf("expected backup=false")
	}
	if !cfg.Journal.Enabled || cfg.Journal.Dir != "audit" {
		t.Errorf("journal = %+v, want enabled with dir=audit", cfg.Journal)
	}
	if cfg.Output.Format != "plain" {
		t.Errorf("format = %s, want plain", cfg.Output.Format)
	}
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	root := t.TempDir()

	cfg, err := LoadConfig(root)
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected %s, got %v", domain.KindNotFound, err)
	}
	// Defaults still usable despite the error.
	if cfg.Output.Format != "table" {
		t.Errorf("expected default config alongside error, got %+v", cfg)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "pngcoder.yaml"), []byte("pngcoder: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected %s, got %v", domain.KindInvalidConfig, err)
	}
}

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Create pngcoder.yaml at root
	if err := os.WriteFile(filepath.Join(root, "pngcoder.yaml"), []byte("pngcoder:\n  backup:\n    enabled: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := NewFinder()
	_, err := f.FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_FilePathUsesItsDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "pngcoder.yaml"), []byte("pngcoder: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(root, "image.png")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().FindRoot(file)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}
