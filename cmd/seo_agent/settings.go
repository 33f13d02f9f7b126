package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/db"
	"github.com/jonathan/seo-auditor/internal/logging"
)

// Persistent flags shared by every subcommand
var (
	globalConfigPath  string
	globalPolicyPath  string
	globalLogLevel    string
	globalLogFormat   string
	globalVerbose     bool
	globalAPIKey      string
	globalDatabaseURL string
)

func init() {
	flags := rootCmd.PersistentFlags()
	// API key can be passed as a flag, or read from env var YOUTUBE_API_KEY
	flags.StringVar(&globalAPIKey, "api-key", "", "YouTube Data API key (optional, defaults to YOUTUBE_API_KEY env var)")
	// Database URL for audit history
	flags.StringVar(&globalDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
}

// settings bundles the resolved configuration every subcommand starts from
type settings struct {
	cfg    config.Config
	policy *config.ScoringConfig
	logger *zap.Logger
}

// loadSettings resolves the configuration in order: config file, explicitly set flags,
// environment, built-in defaults. It then builds the logger and loads the scoring policy.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if globalConfigPath != "" {
		loaded, err := config.LoadConfig(globalConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Step 2: Apply CLI overrides, only for flags that were explicitly set
	flags := cmd.Flags()
	if flags.Changed("policy") {
		cfg.PolicyPath = globalPolicyPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = globalLogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = globalLogFormat
	}
	if flags.Changed("verbose") {
		cfg.Verbose = globalVerbose
	}
	if flags.Changed("api-key") {
		cfg.APIKey = globalAPIKey
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = globalDatabaseURL
	}
	if cfg.Verbose && cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	// Step 3: Environment, then built-in defaults
	cfg = cfg.MergeWithDefaults(config.Config{
		APIKey:      os.Getenv("YOUTUBE_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	policy, err := config.LoadScoringConfig(cfg.PolicyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoring policy: %w", err)
	}
	if cfg.PolicyPath != "" {
		logger.Debug("loaded scoring policy", zap.String("path", cfg.PolicyPath))
	}

	return &settings{cfg: cfg, policy: policy, logger: logger}, nil
}

// openDatabase connects to the audit history database and applies pending migrations
func (s *settings) openDatabase(ctx context.Context) (*db.DB, error) {
	if s.cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}
