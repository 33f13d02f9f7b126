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
		"niche": "turkish psychedelic rock",
		"api_key": "test-key",
		"concurrency": 8,
		"max_videos": 25,
		"format": "markdown",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "turkish psychedelic rock", cfg.Niche)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, 25, cfg.MaxVideos)
	assert.Equal(t, "markdown", cfg.Format)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
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

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero value is valid", cfg: Config{}},
		{name: "typical values", cfg: Config{Concurrency: 4, MaxVideos: 10, Port: 8080, LogFormat: "json"}},
		{name: "negative concurrency", cfg: Config{Concurrency: -1}, wantErr: "concurrency"},
		{name: "negative max videos", cfg: Config{MaxVideos: -5}, wantErr: "max_videos"},
		{name: "port out of range", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "unknown log format", cfg: Config{LogFormat: "xml"}, wantErr: "log_format"},
		{name: "missing policy file", cfg: Config{PolicyPath: "/nonexistent/policy.yaml"}, wantErr: "policy file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Niche:       "default niche",
		APIKey:      "default-key",
		DatabaseURL: "postgres://localhost/seo",
		Concurrency: 2,
		Format:      "json",
	}

	partial := Config{
		Niche:     "custom niche",
		MaxVideos: 50,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom niche", merged.Niche)
	assert.Equal(t, 50, merged.MaxVideos)

	// Default values should fill in empty fields
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "postgres://localhost/seo", merged.DatabaseURL)
	assert.Equal(t, 2, merged.Concurrency)
	assert.Equal(t, "json", merged.Format)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Niche: "jazz"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "jazz", merged.Niche)
	assert.Equal(t, DefaultConcurrency, merged.Concurrency)
	assert.Equal(t, DefaultMaxVideos, merged.MaxVideos)
	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, DefaultFormat, merged.Format)
	assert.Equal(t, DefaultLogLevel, merged.LogLevel)
	assert.Equal(t, DefaultLogFormat, merged.LogFormat)
}
