package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonathan/seo-auditor/internal/db"
	"github.com/jonathan/seo-auditor/internal/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored audits and channel summaries",
	Long: `Lists audits from the audit history database, newest first, optionally filtered.
With --channel the stored summaries of that channel are listed instead. --delete removes one audit.`,
	RunE: runHistory,
}

var (
	historyVideo    string
	historyNiche    string
	historyGrade    string
	historyMinScore int
	historyMaxScore int
	historySince    time.Duration
	historyLimit    int
	historyChannel  string
	historyDelete   string
	historyJSON     bool
)

func init() {
	historyCmd.Flags().StringVar(&historyVideo, "video", "", "Only audits of this video ID")
	historyCmd.Flags().StringVar(&historyNiche, "niche", "", "Only audits whose niche contains this text")
	historyCmd.Flags().StringVar(&historyGrade, "grade", "", "Only audits with this grade")
	historyCmd.Flags().IntVar(&historyMinScore, "min-score", 0, "Only audits scoring at least this")
	historyCmd.Flags().IntVar(&historyMaxScore, "max-score", 100, "Only audits scoring at most this")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "Only audits newer than this, e.g. 72h")
	historyCmd.Flags().IntVar(&historyLimit, "limit", db.DefaultListLimit, "Maximum number of rows")
	historyCmd.Flags().StringVar(&historyChannel, "channel", "", "List the stored summaries of this channel instead")
	historyCmd.Flags().StringVar(&historyDelete, "delete", "", "Delete the audit with this ID")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print JSON instead of a table")

	historyCmd.MarkFlagsMutuallyExclusive("channel", "delete")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	ctx := cmd.Context()
	database, err := s.openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	out := cmd.OutOrStdout()

	switch {
	case historyDelete != "":
		id, err := uuid.Parse(historyDelete)
		if err != nil {
			return &types.InvalidArgumentError{Argument: "audit id", Value: historyDelete, Message: "must be a UUID"}
		}
		if err := database.DeleteAudit(ctx, id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Deleted audit %s\n", id)
		return nil

	case historyChannel != "":
		summaries, err := database.LatestChannelSummaries(ctx, historyChannel, historyLimit)
		if err != nil {
			return err
		}
		if historyJSON {
			return printJSON(out, summaries)
		}
		renderSummaryHistory(out, summaries)
		return nil
	}

	filter := historyFilter(cmd, time.Now())
	audits, err := database.ListAudits(ctx, filter)
	if err != nil {
		return err
	}
	if historyJSON {
		return printJSON(out, audits)
	}
	renderAuditHistory(out, audits)
	return nil
}

// historyFilter builds the list filter from the flags that were set
func historyFilter(cmd *cobra.Command, now time.Time) db.AuditFilter {
	flags := cmd.Flags()
	filter := db.AuditFilter{
		VideoID: historyVideo,
		Niche:   historyNiche,
		Grade:   types.Grade(historyGrade),
		Limit:   historyLimit,
	}
	if flags.Changed("min-score") {
		v := historyMinScore
		filter.MinScore = &v
	}
	if flags.Changed("max-score") {
		v := historyMaxScore
		filter.MaxScore = &v
	}
	if historySince > 0 {
		since := now.Add(-historySince)
		filter.Since = &since
	}
	return filter
}

func renderAuditHistory(w io.Writer, audits []db.AuditRecord) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Video", "Title", "Score", "Grade", "Created"})
	for _, a := range audits {
		tw.AppendRow(table.Row{a.ID, a.VideoID, a.Title, a.OverallScore, a.Grade, a.CreatedAt.Format(time.RFC3339)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 3, WidthMax: 48}})
	tw.AppendFooter(table.Row{"", "", "Total", len(audits)})
	tw.Render()
}

func renderSummaryHistory(w io.Writer, summaries []db.SummaryRecord) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Channel", "Videos", "Average", "Grade", "Created"})
	for _, rec := range summaries {
		if rec.Summary == nil {
			continue
		}
		tw.AppendRow(table.Row{
			rec.ID,
			rec.Channel,
			rec.Summary.TotalAudited,
			fmt.Sprintf("%.1f", rec.Summary.AverageScore),
			rec.Summary.AverageGrade,
			rec.CreatedAt.Format(time.RFC3339),
		})
	}
	tw.Render()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
