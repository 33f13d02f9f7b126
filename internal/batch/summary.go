package batch

import (
	"math"
	"sort"

	"github.com/jonathan/seo-auditor/internal/audit"
	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/types"
)

// Score bands of the channel histogram
const (
	excellentMin = 90
	goodMin      = 70
	fairMin      = 50

	performerCount = 5
)

// NoGrade is reported as the average grade when no item succeeded
const NoGrade types.Grade = "N/A"

// Summarize aggregates batch results into channel statistics. Failed items are listed
// but excluded from the average, the histogram and the performer lists.
func Summarize(channel string, results []types.BatchItemResult, cfg *config.ScoringConfig) types.ChannelSummary {
	summary := types.ChannelSummary{
		Channel:          channel,
		TotalAudited:     len(results),
		AverageGrade:     NoGrade,
		TopPerformers:    make([]types.Performer, 0),
		BottomPerformers: make([]types.Performer, 0),
		Failures:         make([]types.ItemFailure, 0),
	}

	performers := make([]types.Performer, 0, len(results))
	total := 0
	for _, r := range results {
		if r.Failed() || r.Report == nil {
			summary.Failures = append(summary.Failures, types.ItemFailure{ID: r.ID, Error: failureMessage(r)})
			continue
		}

		score := r.Report.OverallScore
		total += score
		performers = append(performers, types.Performer{
			ID:           r.ID,
			Title:        r.Report.Title,
			OverallScore: score,
			Grade:        r.Report.Grade,
		})

		switch {
		case score >= excellentMin:
			summary.Distribution.Excellent++
		case score >= goodMin:
			summary.Distribution.Good++
		case score >= fairMin:
			summary.Distribution.Fair++
		default:
			summary.Distribution.Poor++
		}
	}

	summary.Successful = len(performers)
	summary.Failed = len(summary.Failures)
	if len(performers) == 0 {
		return summary
	}

	avg := float64(total) / float64(len(performers))
	summary.AverageScore = math.Round(avg*10) / 10
	summary.AverageGrade = audit.Grade(int(avg), cfg)

	// Highest first, ties in input order
	top := make([]types.Performer, len(performers))
	copy(top, performers)
	sort.SliceStable(top, func(i, j int) bool { return top[i].OverallScore > top[j].OverallScore })
	summary.TopPerformers = top[:min(performerCount, len(top))]

	bottom := make([]types.Performer, len(performers))
	copy(bottom, performers)
	sort.SliceStable(bottom, func(i, j int) bool { return bottom[i].OverallScore < bottom[j].OverallScore })
	summary.BottomPerformers = bottom[:min(performerCount, len(bottom))]

	return summary
}

func failureMessage(r types.BatchItemResult) string {
	if r.Error != "" {
		return r.Error
	}
	return "no report produced"
}
