package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"db_path": "/tmp/jobtrack.db",
		"api_key": "test-key",
		"max_retries": 3,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/jobtrack.db", cfg.DBPath)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv_Precedence(t *testing.T) {
	t.Setenv("JOBTRACK_API_KEY", "primary")
	t.Setenv("GEMINI_API_KEY", "fallback")

	cfg := Config{}
	cfg.FromEnv()
	assert.Equal(t, "primary", cfg.APIKey)

	t.Setenv("JOBTRACK_API_KEY", "")
	cfg = Config{}
	cfg.FromEnv()
	assert.Equal(t, "fallback", cfg.APIKey)

	// A key from the config file is never overridden.
	cfg = Config{APIKey: "from-file"}
	cfg.FromEnv()
	assert.Equal(t, "from-file", cfg.APIKey)
}

func TestValidate_NegativeValues(t *testing.T) {
	err := (&Config{MaxRetries: -1}).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_retries")

	err = (&Config{BaseDelayMs: -1}).Validate()
	assert.Error(t, err)

	err = (&Config{DebounceMs: -1}).Validate()
	assert.Error(t, err)
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{MaxRetries: 5, BaseDelayMs: 2000, DebounceMs: 500}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		DBPath:      "/default/jobtrack.db",
		APIKey:      "default-key",
		MaxRetries:  5,
		BaseDelayMs: 2000,
	}

	partial := Config{APIKey: "custom-key"}
	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-key", merged.APIKey)

	// Default values should fill in empty fields
	assert.Equal(t, "/default/jobtrack.db", merged.DBPath)
	assert.Equal(t, 5, merged.MaxRetries)
	assert.Equal(t, 2000, merged.BaseDelayMs)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{DBPath: "custom.db"}
	merged := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, "custom.db", merged.DBPath)
}
