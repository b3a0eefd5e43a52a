package config

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestXDG points the XDG dirs at a temp directory.
func setupTestXDG(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("DECKSTATS_COLLECTION", "")
	return tmpDir
}

func TestGetPathsRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/testxdg/config")

	paths := GetPaths()

	if paths.ConfigDir != "/tmp/testxdg/config/deckstats" {
		t.Fatalf("expected /tmp/testxdg/config/deckstats, got %s", paths.ConfigDir)
	}
	if paths.ConfigFile != "/tmp/testxdg/config/deckstats/config.toml" {
		t.Fatalf("unexpected config file %s", paths.ConfigFile)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("DECKSTATS_COLLECTION", "")
	cfg := defaultConfig()

	if cfg.Heatmap.Scheme != "blue" {
		t.Fatalf("expected scheme 'blue', got %q", cfg.Heatmap.Scheme)
	}
	if cfg.Heatmap.Range != "6m" {
		t.Fatalf("expected range '6m', got %q", cfg.Heatmap.Range)
	}
	if !cfg.Heatmap.ShowMonthLabels || !cfg.Heatmap.ShowWeekdayLabels {
		t.Fatal("labels should default to shown")
	}
	if !cfg.Source.UseMock() {
		t.Fatal("expected mock data when no collection is configured")
	}
}

func TestDefaultConfig_CollectionFromEnv(t *testing.T) {
	t.Setenv("DECKSTATS_COLLECTION", "/data/collection.anki2")
	cfg := defaultConfig()
	if cfg.Source.Collection != "/data/collection.anki2" {
		t.Fatalf("collection = %q", cfg.Source.Collection)
	}
	if cfg.Source.UseMock() {
		t.Fatal("collection set: expected real data")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	setupTestXDG(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Chart.Theme != "light" {
		t.Fatalf("theme = %q, want light", cfg.Chart.Theme)
	}
	if Exists() {
		t.Fatal("Exists() should be false before Save")
	}
}

func TestSaveAndLoad(t *testing.T) {
	setupTestXDG(t)

	cfg := defaultConfig()
	cfg.Heatmap.Scheme = "viridis"
	cfg.Heatmap.ShowWeekdayLabels = false
	cfg.Chart.Theme = "dark"
	cfg.Source.Seed = 99

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() should be true after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Heatmap.Scheme != "viridis" || loaded.Chart.Theme != "dark" || loaded.Source.Seed != 99 {
		t.Fatalf("round trip lost values: %+v", loaded)
	}
	if loaded.Heatmap.ShowWeekdayLabels {
		t.Fatal("weekday labels should be hidden after round trip")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	setupTestXDG(t)
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.ConfigFile, []byte("[heatmap]\nscheme = \"red\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Heatmap.Scheme != "red" {
		t.Errorf("scheme = %q, want red", cfg.Heatmap.Scheme)
	}
	if cfg.Heatmap.Range != DefaultRange {
		t.Errorf("range = %q, want default %q", cfg.Heatmap.Range, DefaultRange)
	}
	if !cfg.Chart.GridLines || !cfg.Heatmap.ShowMonthLabels {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	setupTestXDG(t)
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.ConfigFile, []byte("[heatmap\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
