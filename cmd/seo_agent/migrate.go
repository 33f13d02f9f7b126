package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply audit history database migrations",
	Long:  "Creates or upgrades the audit history tables. Requires DATABASE_URL or --db-url.",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	// openDatabase applies pending migrations
	database, err := s.openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	database.Close()

	s.logger.Info("migrations applied")
	return nil
}
