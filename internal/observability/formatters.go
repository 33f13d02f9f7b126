// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/seo-auditor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintAuditReport outputs the overall score, facet scores and top recommendations of one audit.
func (p *Printer) PrintAuditReport(report *types.AuditReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.VideoID != "" {
		sb.WriteString(fmt.Sprintf("Video:    %s\n", report.VideoID))
	}
	sb.WriteString(fmt.Sprintf("Title:    %s\n", report.Title))
	sb.WriteString(fmt.Sprintf("Overall:  %d/100 (%s)\n", report.OverallScore, report.Grade))
	sb.WriteString("\n")

	for _, f := range types.Facets {
		fs, ok := report.Facets[f]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-12s %3d  %s\n", f.Label(), fs.Score, fs.Status))
	}

	if len(report.PriorityActions) > 0 {
		sb.WriteString("\nPriority actions:\n")
		for _, a := range report.PriorityActions {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", a.Action, a.QuickFix))
		}
	}

	ip := report.ImprovementPotential
	sb.WriteString(fmt.Sprintf("\nPotential: %d → %d (+%d, %.1f%%)", ip.CurrentOverall, ip.PotentialOverall, ip.Gain, ip.GainPercentage))

	p.printBox("SEO AUDIT", sb.String())
}

// PrintRecommendations outputs each recommendation group with its first details.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for i, r := range recs {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(r.Priority)), r.Message))
		count := min(len(r.Details), 3)
		for _, d := range r.Details[:count] {
			sb.WriteString(fmt.Sprintf("  • %s\n", d))
		}
		if len(r.Details) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Details)-count))
		}
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedKeywords outputs the top N ranked keywords with scores and competition.
func (p *Printer) PrintRankedKeywords(research *types.KeywordResearch) {
	if research == nil || len(research.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n\n", research.TotalCandidates))

	count := min(len(research.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := research.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, kw.Keyword))
		sb.WriteString(fmt.Sprintf("    Score: %.1f  Competition: %s  Relevance: %d\n", kw.Score, kw.Competition, kw.Relevance))
	}

	if len(research.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more keywords", len(research.Ranked)-maxItemsToShow))
	}

	p.printBox("TOP KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintChannelSummary outputs the average, score distribution and extremes of a channel audit.
func (p *Printer) PrintChannelSummary(summary *types.ChannelSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	if summary.Channel != "" {
		sb.WriteString(fmt.Sprintf("Channel:  %s\n", summary.Channel))
	}
	sb.WriteString(fmt.Sprintf("Audited:  %d (%d ok, %d failed)\n", summary.TotalAudited, summary.Successful, summary.Failed))
	sb.WriteString(fmt.Sprintf("Average:  %.1f (%s)\n", summary.AverageScore, summary.AverageGrade))
	sb.WriteString("\n")

	d := summary.Distribution
	sb.WriteString(fmt.Sprintf("  excellent %d | good %d | fair %d | poor %d\n", d.Excellent, d.Good, d.Fair, d.Poor))

	writePerformers := func(label string, performers []types.Performer) {
		if len(performers) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", label))
		for _, perf := range performers {
			sb.WriteString(fmt.Sprintf("  %3d  %s\n", perf.OverallScore, truncate(perf.Title, 40)))
		}
	}
	writePerformers("Top", summary.TopPerformers)
	writePerformers("Needs work", summary.BottomPerformers)

	if len(summary.Failures) > 0 {
		sb.WriteString("\nFailures:\n")
		count := min(len(summary.Failures), maxItemsToShow)
		for _, f := range summary.Failures[:count] {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", f.ID, f.Error))
		}
		if len(summary.Failures) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Failures)-count))
		}
	}

	p.printBox("CHANNEL SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
