package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, "arblint.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write arblint.yaml: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Accessor != "loc" {
		t.Errorf("Accessor = %q, want %q", cfg.Accessor, "loc")
	}
	if cfg.Debug {
		t.Error("Debug should be off by default")
	}
	if len(cfg.ExcludeGlobs) != 0 {
		t.Errorf("ExcludeGlobs = %v, want none", cfg.ExcludeGlobs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := Load(t.TempDir(), zerolog.Nop())

	if cfg.Accessor != "loc" {
		t.Errorf("Accessor = %q, want default %q", cfg.Accessor, "loc")
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoadFromFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `exclude_globs:
  - "*.g.dart"
  - "test/*"
debug: true
accessor: t
ignore_types:
  - Uri
  - Duration
`)

	cfg := Load(root, zerolog.Nop())

	if !cfg.Debug {
		t.Error("Debug should be true per file")
	}
	if cfg.Accessor != "t" {
		t.Errorf("Accessor = %q, want %q", cfg.Accessor, "t")
	}
	if len(cfg.ExcludeGlobs) != 2 {
		t.Fatalf("ExcludeGlobs = %v, want 2 entries", cfg.ExcludeGlobs)
	}
	if len(cfg.IgnoreTypes) != 2 || cfg.IgnoreTypes[0] != "Uri" {
		t.Errorf("IgnoreTypes = %v, want [Uri Duration]", cfg.IgnoreTypes)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "exclude_globs: [\n")

	cfg := Load(root, zerolog.Nop())

	if cfg.Accessor != "loc" {
		t.Errorf("Accessor = %q, want default after malformed file", cfg.Accessor)
	}
	if cfg.Debug || len(cfg.ExcludeGlobs) != 0 {
		t.Error("malformed file should fall back to defaults")
	}
}

func TestLoadEmptyAccessorFallsBack(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "accessor: \"\"\n")

	if cfg := Load(root, zerolog.Nop()); cfg.Accessor != "loc" {
		t.Errorf("Accessor = %q, want %q for an empty setting", cfg.Accessor, "loc")
	}
}

func TestLoadDropsMalformedGlob(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `exclude_globs:
  - "[bad"
  - "*.g.dart"
`)

	cfg := Load(root, zerolog.Nop())

	if len(cfg.ExcludeGlobs) != 1 || cfg.ExcludeGlobs[0] != "*.g.dart" {
		t.Fatalf("ExcludeGlobs = %v, want only the valid glob", cfg.ExcludeGlobs)
	}
}

func TestExcluded(t *testing.T) {
	cfg := &Config{ExcludeGlobs: []string{"*.g.dart", "test/*", "lib/generated/*.dart"}}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"basename glob", "lib/models/user.g.dart", true},
		{"path glob", "test/widget_test.dart", true},
		{"nested path glob", "lib/generated/messages.dart", true},
		{"windows separators", filepath.Join("lib", "models", "user.g.dart"), true},
		{"plain source file", "lib/main.dart", false},
		{"partial directory match", "lib/test/helper.dart", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Excluded(tt.path); got != tt.want {
				t.Errorf("Excluded(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestExcludedEmptyConfig(t *testing.T) {
	if DefaultConfig().Excluded("lib/main.dart") {
		t.Error("no globs configured, nothing should be excluded")
	}
}
