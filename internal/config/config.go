// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Output formats accepted by the rank command.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Paths
	Job        string `json:"job,omitempty"`        // Path to job requirements JSON file
	Candidates string `json:"candidates,omitempty"` // Path to candidate profiles JSON file
	Output     string `json:"output,omitempty"`     // Output path; empty writes to stdout

	// Behavior
	Format  string `json:"format,omitempty"`  // Output format: json or csv
	Workers int    `json:"workers,omitempty"` // Concurrent scoring workers
	Debug   bool   `json:"debug,omitempty"`   // Debug-level logging
	LogJSON bool   `json:"log_json,omitempty"` // JSON-encoded log output

	// Weights overrides the engine's default component weights. Values must
	// sum to 1.0 (within ±0.01); the engine rejects anything else.
	Weights map[string]float64 `json:"weights,omitempty"`
}

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are checked after flag merging, not here.
func (c *Config) Validate() error {
	if c.Format != "" && c.Format != FormatJSON && c.Format != FormatCSV {
		return fmt.Errorf("config error: 'format' must be %q or %q, got %q", FormatJSON, FormatCSV, c.Format)
	}

	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	if c.Candidates != "" {
		if _, err := os.Stat(c.Candidates); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidates file not found: %s", c.Candidates)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Candidates == "" {
		result.Candidates = defaults.Candidates
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if !result.Debug {
		result.Debug = defaults.Debug
	}
	if !result.LogJSON {
		result.LogJSON = defaults.LogJSON
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	return result
}
