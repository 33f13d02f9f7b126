// Package main provides the seo_agent CLI: video metadata audits, keyword research and the REST API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seo_agent",
	Short: "Video metadata SEO auditor",
	Long: `seo_agent scores the published metadata of videos (title, description, tags, thumbnail),
explains the score with prioritized recommendations, ranks keyword candidates and summarizes whole channels.

Configuration can be loaded from a JSON file using --config. Command-line flags override config file values.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	flags.StringVar(&globalPolicyPath, "policy", "", "Path to a YAML or JSON scoring policy override")
	flags.StringVar(&globalLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&globalLogFormat, "log-format", "", "Log format: console or json")
	flags.BoolVarP(&globalVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
