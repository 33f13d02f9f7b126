package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/seo-auditor/internal/audit"
	"github.com/jonathan/seo-auditor/internal/export"
	"github.com/jonathan/seo-auditor/internal/observability"
	"github.com/jonathan/seo-auditor/internal/schemas"
	"github.com/jonathan/seo-auditor/internal/types"
	"github.com/jonathan/seo-auditor/internal/youtube"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit the metadata of one video",
	Long: `Scores the title, description, tags and thumbnail of one video and prints the audit report.

The record comes from exactly one of: --video (fetched from the YouTube Data API), --file (a MetadataRecord
JSON file), or the inline --title/--description/--tags/--thumbnail flags.`,
	RunE: runAudit,
}

// auditInput describes where the audited record comes from
type auditInput struct {
	Video           string
	File            string
	Title           string
	Description     string
	DescriptionFile string
	Tags            []string
	Thumbnail       string
	Inline          bool // any inline field flag was set
}

var (
	auditFlags       auditInput
	auditNiche       string
	auditFormat      string
	auditOutput      string
	auditSave        bool
	auditCheckSchema bool
)

// inlineAuditFlags build the record when neither --video nor --file is given
var inlineAuditFlags = []string{"title", "description", "description-file", "tags", "thumbnail"}

func init() {
	auditCmd.Flags().StringVar(&auditFlags.Video, "video", "", "Video ID or URL to fetch (requires an API key)")
	auditCmd.Flags().StringVarP(&auditFlags.File, "file", "f", "", "Path to a MetadataRecord JSON file")
	auditCmd.Flags().StringVar(&auditFlags.Title, "title", "", "Video title")
	auditCmd.Flags().StringVar(&auditFlags.Description, "description", "", "Video description")
	auditCmd.Flags().StringVar(&auditFlags.DescriptionFile, "description-file", "", "Path to a text file holding the description")
	auditCmd.Flags().StringSliceVar(&auditFlags.Tags, "tags", nil, "Comma-separated tags")
	auditCmd.Flags().StringVar(&auditFlags.Thumbnail, "thumbnail", "", "Thumbnail URL or path")
	auditCmd.Flags().StringVar(&auditNiche, "niche", "", "Niche used to judge keyword relevance (overrides the record's niche when set)")
	auditCmd.Flags().StringVarP(&auditFormat, "format", "F", "", "Output format: json, text, markdown, html")
	auditCmd.Flags().StringVarP(&auditOutput, "out", "o", "", "Write the report to this file instead of stdout")
	auditCmd.Flags().BoolVar(&auditSave, "save", false, "Store the report in the audit history database")
	auditCmd.Flags().BoolVar(&auditCheckSchema, "check-schema", false, "Validate the report against schemas/audit_report.schema.json before writing")

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	if cmd.Flags().Changed("niche") {
		s.cfg.Niche = auditNiche
	}
	if cmd.Flags().Changed("format") {
		s.cfg.Format = auditFormat
	}
	format, err := export.ParseFormat(s.cfg.Format)
	if err != nil {
		return err
	}

	in := auditFlags
	for _, name := range inlineAuditFlags {
		if cmd.Flags().Changed(name) {
			in.Inline = true
		}
	}

	ctx := cmd.Context()
	record, err := resolveRecord(ctx, in, s)
	if err != nil {
		return err
	}
	if record.Niche == "" || cmd.Flags().Changed("niche") {
		record.Niche = s.cfg.Niche
	}

	report, err := audit.New(s.policy).Audit(*record)
	if err != nil {
		return fmt.Errorf("failed to audit record: %w", err)
	}
	s.logger.Debug("audit complete",
		zap.String("video_id", report.VideoID),
		zap.Int("overall_score", report.OverallScore),
		zap.String("grade", string(report.Grade)))

	if auditCheckSchema {
		if err := checkSchema(schemas.AuditReportSchema, report); err != nil {
			return err
		}
	}

	if s.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintAuditReport(report)
	}

	if auditSave {
		database, err := s.openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		id, err := database.SaveAudit(ctx, report)
		if err != nil {
			return err
		}
		s.logger.Info("audit saved", zap.String("id", id.String()), zap.String("video_id", report.VideoID))
	}

	return writeOutput(cmd.OutOrStdout(), auditOutput, func(w io.Writer) error {
		return export.Render(w, report, format)
	})
}

// resolveRecord loads the record from exactly one input: a video, a file or the inline flags
func resolveRecord(ctx context.Context, in auditInput, s *settings) (*types.MetadataRecord, error) {
	sources := 0
	for _, set := range []bool{in.Video != "", in.File != "", in.Inline} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, &types.InvalidArgumentError{Argument: "record source", Message: "--video, --file and the inline flags are mutually exclusive"}
	}

	switch {
	case in.Video != "":
		videoID, err := youtube.ParseVideoID(in.Video)
		if err != nil {
			return nil, err
		}
		source, err := youtube.New(ctx, youtube.Config{APIKey: s.cfg.APIKey, Logger: s.logger})
		if err != nil {
			return nil, err
		}
		return source.Video(ctx, videoID)

	case in.File != "":
		records, err := readRecords(in.File)
		if err != nil {
			return nil, err
		}
		if len(records) != 1 {
			return nil, &types.InvalidArgumentError{
				Argument: "file",
				Value:    in.File,
				Message:  fmt.Sprintf("holds %d records; use audit-channel for batches", len(records)),
			}
		}
		return &records[0], nil

	case in.Inline:
		record := &types.MetadataRecord{
			Title:       in.Title,
			Description: in.Description,
			Tags:        in.Tags,
		}
		if in.DescriptionFile != "" {
			if in.Description != "" {
				return nil, &types.InvalidArgumentError{Argument: "description", Message: "--description and --description-file are mutually exclusive"}
			}
			content, err := os.ReadFile(in.DescriptionFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read description file %s: %w", in.DescriptionFile, err)
			}
			record.Description = strings.TrimRight(string(content), "\n")
		}
		if in.Thumbnail != "" {
			record.ThumbnailRef = types.StringPtr(in.Thumbnail)
		}
		return record, nil

	default:
		return nil, &types.InvalidArgumentError{Argument: "record source", Message: "one of --video, --file or --title is required"}
	}
}
