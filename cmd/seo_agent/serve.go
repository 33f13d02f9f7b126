package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/seo-auditor/internal/server"
)

var (
	servePort        int
	serveConcurrency int
	serveHistory     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the audit engine: POST /audit, POST /audit/batch, POST /keywords/rank,
GET /health and GET /metrics. With a database the audits are stored and served from GET /audits.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().IntVar(&serveConcurrency, "concurrency", 0, "Number of audits running at once per batch request")
	serveCmd.Flags().BoolVar(&serveHistory, "history", true, "Store audits when a database URL is configured")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	if cmd.Flags().Changed("port") {
		s.cfg.Port = servePort
	}
	if cmd.Flags().Changed("concurrency") {
		s.cfg.Concurrency = serveConcurrency
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	cfg := server.Config{
		Port:        s.cfg.Port,
		Scoring:     s.policy,
		Concurrency: s.cfg.Concurrency,
		Logger:      s.logger,
		Registry:    registry,
	}

	if serveHistory && s.cfg.DatabaseURL != "" {
		database, err := s.openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()
		cfg.Store = database
		s.logger.Info("audit history enabled")
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	s.logger.Info("starting API server", zap.Int("port", s.cfg.Port))
	return srv.Run(ctx)
}
