package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.ExtractionEnabled {
		t.Error("Extraction should be enabled by default")
	}
	if cfg.Workers <= 0 {
		t.Errorf("Expected positive default worker count, got %d", cfg.Workers)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("Unexpected default output dir: %q", cfg.OutputDir)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "extraction:\n  enabled: false\nbatch:\n  workers: 3\n  output_dir: results\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ExtractionEnabled {
		t.Error("Expected extraction disabled from file")
	}
	if cfg.Workers != 3 {
		t.Errorf("Expected 3 workers, got %d", cfg.Workers)
	}
	if cfg.OutputDir != "results" {
		t.Errorf("Unexpected output dir: %q", cfg.OutputDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Unexpected log level: %q", cfg.LogLevel)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("batch:\n  workers: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EXTRACTION_WORKERS", "7")
	t.Setenv("EXTRACTION_ENABLED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Workers != 7 {
		t.Errorf("Environment must override the file, got %d workers", cfg.Workers)
	}
	if cfg.ExtractionEnabled {
		t.Error("Expected extraction disabled via environment")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}
