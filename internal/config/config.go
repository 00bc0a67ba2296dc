// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	DBPath string `json:"db_path,omitempty"` // Path to the SQLite database file

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA sites
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information

	// Tuning
	MaxRetries  int `json:"max_retries,omitempty"`   // Retry attempts for transient model errors
	BaseDelayMs int `json:"base_delay_ms,omitempty"` // Initial backoff delay in milliseconds
	DebounceMs  int `json:"debounce_ms,omitempty"`   // Persistence write coalescing window
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

// FromEnv fills API credentials from the environment when the config file
// left them unset. JOBTRACK_API_KEY wins over GEMINI_API_KEY.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("JOBTRACK_API_KEY")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxRetries < 0 {
		return fmt.Errorf("config error: 'max_retries' must be non-negative")
	}
	if c.BaseDelayMs < 0 {
		return fmt.Errorf("config error: 'base_delay_ms' must be non-negative")
	}
	if c.DebounceMs < 0 {
		return fmt.Errorf("config error: 'debounce_ms' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DBPath == "" {
		result.DBPath = defaults.DBPath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}
	if result.BaseDelayMs == 0 {
		result.BaseDelayMs = defaults.BaseDelayMs
	}
	if result.DebounceMs == 0 {
		result.DebounceMs = defaults.DebounceMs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DefaultDBPath resolves the default database location under the user's home
// directory, falling back to the working directory when home is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "jobtrack.db"
	}
	return filepath.Join(home, ".jobtrack", "jobtrack.db")
}
