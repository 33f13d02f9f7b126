// Package config provides configuration loading and validation for the CLI and the scoring policy.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default values applied by MergeWithDefaults
const (
	DefaultConcurrency = 4
	DefaultMaxVideos   = 10
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
	DefaultFormat      = "text"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Audit input
	Niche      string `json:"niche,omitempty"`       // Free-text niche used to seed keyword relevance
	PolicyPath string `json:"policy_path,omitempty"` // Path to a YAML/JSON scoring policy override

	// Collaborators
	APIKey      string `json:"api_key,omitempty"`      // YouTube Data API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for audit history

	// Batch
	Concurrency int `json:"concurrency,omitempty"` // Parallel audits in a batch
	MaxVideos   int `json:"max_videos,omitempty"`  // Videos fetched per channel audit

	// Output
	Format    string `json:"format,omitempty"`     // Export format: json, text, markdown, html
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // console or json
	Verbose   bool   `json:"verbose,omitempty"`    // Print detailed debug information

	// Server
	Port int `json:"port,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.MaxVideos < 0 {
		return fmt.Errorf("config error: 'max_videos' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("config error: 'log_format' must be 'console' or 'json'")
	}

	if c.PolicyPath != "" {
		if _, err := os.Stat(c.PolicyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: policy file not found: %s", c.PolicyPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Niche == "" {
		result.Niche = defaults.Niche
	}
	if result.PolicyPath == "" {
		result.PolicyPath = defaults.PolicyPath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Format == "" {
		result.Format = firstNonEmpty(defaults.Format, DefaultFormat)
	}
	if result.LogLevel == "" {
		result.LogLevel = firstNonEmpty(defaults.LogLevel, DefaultLogLevel)
	}
	if result.LogFormat == "" {
		result.LogFormat = firstNonEmpty(defaults.LogFormat, DefaultLogFormat)
	}

	// Int fields: use default if zero
	if result.Concurrency == 0 {
		result.Concurrency = firstPositive(defaults.Concurrency, DefaultConcurrency)
	}
	if result.MaxVideos == 0 {
		result.MaxVideos = firstPositive(defaults.MaxVideos, DefaultMaxVideos)
	}
	if result.Port == 0 {
		result.Port = firstPositive(defaults.Port, DefaultPort)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
