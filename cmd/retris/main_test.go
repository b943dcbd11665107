package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveGameplayConfigAcceptsDefaults(t *testing.T) {
	if err := resolveGameplayConfig("", ""); err != nil {
		t.Fatalf("defaults should resolve cleanly, got: %v", err)
	}
	if err := resolveGameplayConfig("", "hard"); err != nil {
		t.Fatalf("known preset should resolve cleanly, got: %v", err)
	}
}

func TestResolveGameplayConfigRejectsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	if err := resolveGameplayConfig(path, ""); err == nil {
		t.Fatal("a missing --config file must be rejected")
	}
}

func TestResolveGameplayConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("board: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := resolveGameplayConfig(path, ""); err == nil {
		t.Fatal("a --config file that does not parse must be rejected")
	}
}

func TestResolveGameplayConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte(`
board:
  width: -5
  visible_height: 20
  spawn_rows: 4
gravity:
  base_cells_per_second: 2.0
  per_level_increase: 1.0
  max_cells_per_second: 20.0
  soft_drop_factor: 5
scoring:
  base_points: 137
  lines_per_level: 10
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	err := resolveGameplayConfig(path, "")
	if err == nil {
		t.Fatal("a --config file that fails validation must be rejected")
	}
	if !strings.Contains(err.Error(), "board.width") {
		t.Errorf("error %q should name the offending field", err)
	}
}

func TestResolveGameplayConfigRejectsUnknownPreset(t *testing.T) {
	err := resolveGameplayConfig("", "nightmare")
	if err == nil {
		t.Fatal("an unknown --difficulty preset must be rejected")
	}
	if !strings.Contains(err.Error(), "nightmare") {
		t.Errorf("error %q should name the unknown preset", err)
	}
}
