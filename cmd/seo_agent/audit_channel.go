package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/seo-auditor/internal/audit"
	"github.com/jonathan/seo-auditor/internal/batch"
	"github.com/jonathan/seo-auditor/internal/export"
	"github.com/jonathan/seo-auditor/internal/observability"
	"github.com/jonathan/seo-auditor/internal/schemas"
	"github.com/jonathan/seo-auditor/internal/types"
	"github.com/jonathan/seo-auditor/internal/youtube"
)

var auditChannelCmd = &cobra.Command{
	Use:   "audit-channel",
	Short: "Audit many videos and summarize the channel",
	Long: `Audits every record of a batch concurrently and prints a channel summary: average score and grade,
score distribution, top and bottom performers, and failed items.

Records come from the recent uploads of a channel (--handle, requires an API key) or from a JSON array
of MetadataRecords (--file). A failing record is reported in the summary and never aborts the batch.`,
	RunE: runAuditChannel,
}

var (
	channelHandle      string
	channelFile        string
	channelName        string
	channelNiche       string
	channelMaxVideos   int
	channelConcurrency int
	channelFormat      string
	channelOutput      string
	channelResults     string
	channelSave        bool
	channelCheckSchema bool
)

func init() {
	auditChannelCmd.Flags().StringVar(&channelHandle, "handle", "", "Channel handle to fetch uploads from, e.g. @anatolianvinyl")
	auditChannelCmd.Flags().StringVarP(&channelFile, "file", "f", "", "Path to a JSON array of MetadataRecords")
	auditChannelCmd.Flags().StringVar(&channelName, "channel", "", "Channel name shown in the summary (defaults to the handle)")
	auditChannelCmd.Flags().StringVar(&channelNiche, "niche", "", "Niche applied to records that carry none")
	auditChannelCmd.Flags().IntVar(&channelMaxVideos, "max-videos", 0, "Maximum number of uploads to fetch")
	auditChannelCmd.Flags().IntVar(&channelConcurrency, "concurrency", 0, "Number of audits running at once")
	auditChannelCmd.Flags().StringVarP(&channelFormat, "format", "F", "", "Output format: json, text, markdown, html")
	auditChannelCmd.Flags().StringVarP(&channelOutput, "out", "o", "", "Write the summary to this file instead of stdout")
	auditChannelCmd.Flags().StringVar(&channelResults, "results", "", "Also write every per-video result as JSON to this file")
	auditChannelCmd.Flags().BoolVar(&channelSave, "save", false, "Store the reports and the summary in the audit history database")
	auditChannelCmd.Flags().BoolVar(&channelCheckSchema, "check-schema", false, "Validate the summary against schemas/channel_summary.schema.json before writing")

	rootCmd.AddCommand(auditChannelCmd)
}

func runAuditChannel(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	flags := cmd.Flags()
	if flags.Changed("niche") {
		s.cfg.Niche = channelNiche
	}
	if flags.Changed("max-videos") {
		s.cfg.MaxVideos = channelMaxVideos
	}
	if flags.Changed("concurrency") {
		s.cfg.Concurrency = channelConcurrency
	}
	if flags.Changed("format") {
		s.cfg.Format = channelFormat
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	format, err := export.ParseFormat(s.cfg.Format)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, channel, err := loadChannelRecords(ctx, s)
	if err != nil {
		return err
	}
	applyNiche(records, s.cfg.Niche)
	s.logger.Info("auditing channel", zap.String("channel", channel), zap.Int("videos", len(records)))

	runner := batch.NewRunner(audit.New(s.policy))
	runner.Concurrency = s.cfg.Concurrency
	runner.Logger = s.logger

	results := runner.Run(ctx, records)
	summary := batch.Summarize(channel, results, s.policy)

	if channelCheckSchema {
		if err := checkSchema(schemas.ChannelSummarySchema, summary); err != nil {
			return err
		}
	}

	if s.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintChannelSummary(&summary)
	}

	if channelSave {
		if err := saveChannel(ctx, s, results, &summary); err != nil {
			return err
		}
	}

	if channelResults != "" {
		if err := writeOutput(nil, channelResults, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}); err != nil {
			return err
		}
	}

	return writeOutput(cmd.OutOrStdout(), channelOutput, func(w io.Writer) error {
		return export.RenderSummary(w, &summary, format)
	})
}

// loadChannelRecords returns the batch and the channel name shown in the summary
func loadChannelRecords(ctx context.Context, s *settings) ([]types.MetadataRecord, string, error) {
	switch {
	case channelHandle != "" && channelFile != "":
		return nil, "", &types.InvalidArgumentError{Argument: "record source", Message: "--handle and --file are mutually exclusive"}

	case channelHandle != "":
		handle, err := youtube.NormalizeHandle(channelHandle)
		if err != nil {
			return nil, "", err
		}
		source, err := youtube.New(ctx, youtube.Config{APIKey: s.cfg.APIKey, Logger: s.logger})
		if err != nil {
			return nil, "", err
		}
		records, err := source.ChannelUploads(ctx, handle, int64(s.cfg.MaxVideos))
		if err != nil {
			return nil, "", err
		}
		if len(records) == 0 {
			return nil, "", fmt.Errorf("channel %s has no uploads", handle)
		}
		return records, firstNonEmpty(channelName, "@"+handle), nil

	case channelFile != "":
		records, err := readRecords(channelFile)
		if err != nil {
			return nil, "", err
		}
		return records, channelName, nil

	default:
		return nil, "", &types.InvalidArgumentError{Argument: "record source", Message: "one of --handle or --file is required"}
	}
}

// saveChannel stores every successful report and then the summary
func saveChannel(ctx context.Context, s *settings, results []types.BatchItemResult, summary *types.ChannelSummary) error {
	database, err := s.openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	saved := 0
	for _, r := range results {
		if r.Report == nil {
			continue
		}
		if _, err := database.SaveAudit(ctx, r.Report); err != nil {
			return err
		}
		saved++
	}

	id, err := database.SaveChannelSummary(ctx, summary)
	if err != nil {
		return err
	}
	s.logger.Info("channel audit saved",
		zap.String("summary_id", id.String()),
		zap.Int("reports", saved))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
