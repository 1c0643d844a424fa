// Package config loads CLI configuration from a YAML file and environment
// variables.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for the extraction CLI.
type Config struct {
	// ExtractionEnabled toggles structured extraction; when false the
	// engine only normalizes bodies (raw view mode).
	ExtractionEnabled bool
	// Workers is the batch-mode pool size.
	Workers int
	// OutputDir is where batch mode writes its JSON results.
	OutputDir string
	// LogLevel is a zerolog level name.
	LogLevel string
}

type rawConfig struct {
	Extraction struct {
		Enabled *bool `yaml:"enabled"`
	} `yaml:"extraction"`
	Batch struct {
		Workers   int    `yaml:"workers"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"batch"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		ExtractionEnabled: true,
		Workers:           runtime.GOMAXPROCS(0),
		OutputDir:         "out",
		LogLevel:          "info",
	}
}

// Load reads path (with ${VAR} expansion) and applies environment overrides.
// An empty path yields the defaults plus environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}

		var raw rawConfig
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &raw); err != nil {
			return nil, fmt.Errorf("parse config YAML: %w", err)
		}

		if raw.Extraction.Enabled != nil {
			cfg.ExtractionEnabled = *raw.Extraction.Enabled
		}
		if raw.Batch.Workers > 0 {
			cfg.Workers = raw.Batch.Workers
		}
		if raw.Batch.OutputDir != "" {
			cfg.OutputDir = raw.Batch.OutputDir
		}
		if raw.LogLevel != "" {
			cfg.LogLevel = raw.LogLevel
		}
	}

	if v := os.Getenv("EXTRACTION_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ExtractionEnabled = b
		}
	}
	if v := os.Getenv("EXTRACTION_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("EXTRACTION_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("EXTRACTION_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
