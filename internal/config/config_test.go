package config

import (
	"os"
	"path/filepath"
	"testing"

	"battlemat/internal/grid"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Grid.Type != "LINES" {
		t.Errorf("expected grid type LINES, got %s", cfg.Grid.Type)
	}
	if cfg.Grid.Size != 50 {
		t.Errorf("expected grid size 50, got %g", cfg.Grid.Size)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 800 {
		t.Errorf("expected window 1280x800, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidate_RejectsBadGrid(t *testing.T) {
	cfg := Default()
	cfg.Grid.Type = "TRIANGULAR"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown grid type")
	}

	cfg = Default()
	cfg.Grid.Size = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero grid size")
	}

	cfg = Default()
	cfg.Window.Width = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative window width")
	}
}

func TestGridType(t *testing.T) {
	cfg := Default()
	cfg.Grid.Type = "HEXAGONAL"
	if got := cfg.GridType(); got != grid.TypeHexagonal {
		t.Fatalf("GridType() = %v, want TypeHexagonal", got)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battlemat.yaml")
	content := "grid:\n  type: ISOMETRIC\n  size: 64\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Type != "ISOMETRIC" {
		t.Errorf("expected grid type ISOMETRIC, got %s", cfg.Grid.Type)
	}
	if cfg.Grid.Size != 64 {
		t.Errorf("expected grid size 64, got %g", cfg.Grid.Size)
	}
	// Values absent from the file keep their defaults.
	if cfg.Window.Width != 1280 {
		t.Errorf("expected default width 1280, got %d", cfg.Window.Width)
	}
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battlemat.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  type: NOPE\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid grid type in file")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Grid.Type = "HEXAGONAL"
	cfg.Grid.Size = 40

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Grid.Type != "HEXAGONAL" || loaded.Grid.Size != 40 {
		t.Fatalf("round trip lost grid settings: %+v", loaded.Grid)
	}
}
