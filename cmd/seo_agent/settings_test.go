package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/seo-auditor/internal/config"
)

func withConfigPath(t *testing.T, path string) {
	t.Helper()
	prev := globalConfigPath
	globalConfigPath = path
	t.Cleanup(func() { globalConfigPath = prev })
}

func TestLoadSettings_Defaults(t *testing.T) {
	withConfigPath(t, "")
	t.Setenv("YOUTUBE_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "")

	s, err := loadSettings(&cobra.Command{})
	require.NoError(t, err)

	assert.Equal(t, "env-key", s.cfg.APIKey)
	assert.Equal(t, config.DefaultConcurrency, s.cfg.Concurrency)
	assert.Equal(t, config.DefaultFormat, s.cfg.Format)
	assert.Equal(t, config.DefaultLogLevel, s.cfg.LogLevel)
	require.NotNil(t, s.policy)
	assert.NoError(t, s.policy.Validate())
	assert.NotNil(t, s.logger)
}

func TestLoadSettings_ConfigFileWinsOverEnvironment(t *testing.T) {
	path := writeFile(t, "config.json", `{"api_key": "file-key", "niche": "jazz", "concurrency": 2, "verbose": true}`)
	withConfigPath(t, path)
	t.Setenv("YOUTUBE_API_KEY", "env-key")

	s, err := loadSettings(&cobra.Command{})
	require.NoError(t, err)

	assert.Equal(t, "file-key", s.cfg.APIKey)
	assert.Equal(t, "jazz", s.cfg.Niche)
	assert.Equal(t, 2, s.cfg.Concurrency)
	// verbose without an explicit level logs at debug
	assert.Equal(t, "debug", s.cfg.LogLevel)
}

func TestLoadSettings_FlagsOverrideConfigFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"log_format": "console", "log_level": "warn"}`)
	withConfigPath(t, path)

	prevFormat, prevLevel := globalLogFormat, globalLogLevel
	t.Cleanup(func() { globalLogFormat, globalLogLevel = prevFormat, prevLevel })

	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&globalLogFormat, "log-format", "", "")
	cmd.Flags().StringVar(&globalLogLevel, "log-level", "", "")
	require.NoError(t, cmd.Flags().Set("log-format", "json"))

	s, err := loadSettings(cmd)
	require.NoError(t, err)
	assert.Equal(t, "json", s.cfg.LogFormat)
	assert.Equal(t, "warn", s.cfg.LogLevel)
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{name: "invalid config JSON", config: `{ nope }`, wantErr: "failed to load config"},
		{name: "invalid config values", config: `{"concurrency": -2}`, wantErr: "concurrency"},
		{name: "unknown log level", config: `{"log_level": "loud"}`, wantErr: "unknown log level"},
		{name: "missing policy", config: `{"policy_path": "/nonexistent/policy.yaml"}`, wantErr: "policy file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfigPath(t, writeFile(t, "config.json", tt.config))
			_, err := loadSettings(&cobra.Command{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSettings_PolicyFile(t *testing.T) {
	policy := writeFile(t, "policy.yaml", "thumbnail:\n  baseline: 40\n")
	withConfigPath(t, writeFile(t, "config.json", `{"policy_path": "`+policy+`"}`))

	s, err := loadSettings(&cobra.Command{})
	require.NoError(t, err)
	assert.Equal(t, 40, s.policy.Thumbnail.Baseline)
}

func TestOpenDatabase_RequiresURL(t *testing.T) {
	s := testSettings()
	_, err := s.openDatabase(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
