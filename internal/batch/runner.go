// Package batch audits many metadata records concurrently and summarizes the results per channel.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/seo-auditor/internal/audit"
	"github.com/jonathan/seo-auditor/internal/logging"
	"github.com/jonathan/seo-auditor/internal/metrics"
	"github.com/jonathan/seo-auditor/internal/types"
)

// DefaultConcurrency bounds the number of audits running at once
const DefaultConcurrency = 4

// Runner audits records over a bounded worker pool.
// A failing item is recorded in its own result slot and never aborts its siblings.
type Runner struct {
	Auditor     *audit.Auditor
	Concurrency int
	Logger      *zap.Logger
	Metrics     *metrics.Metrics // optional
}

// NewRunner creates a Runner with the default concurrency and a no-op logger
func NewRunner(auditor *audit.Auditor) *Runner {
	return &Runner{
		Auditor:     auditor,
		Concurrency: DefaultConcurrency,
		Logger:      logging.NewNop(),
	}
}

// Run audits every record and returns one result per record in input order.
// Records without a VideoID get a generated ID. Once ctx is cancelled no further items
// are started and the remaining slots carry the context error.
func (r *Runner) Run(ctx context.Context, records []types.MetadataRecord) []types.BatchItemResult {
	logger := logging.OrNop(r.Logger)
	results := make([]types.BatchItemResult, len(records))
	for i, rec := range records {
		results[i].ID = itemID(rec)
	}

	limit := r.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	g := new(errgroup.Group)
	g.SetLimit(limit)

	logger.Debug("batch started", zap.Int("items", len(records)), zap.Int("concurrency", limit))

	for i := range records {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(records); j++ {
				results[j].Error = err.Error()
			}
			logger.Warn("batch cancelled", zap.Int("unscheduled", len(records)-i), zap.Error(err))
			break
		}

		g.Go(func() error {
			// each goroutine writes only its own slot
			results[i] = r.auditItem(ctx, results[i].ID, records[i], logger)
			return nil
		})
	}

	_ = g.Wait()

	logger.Info("batch finished", zap.Int("items", len(records)), zap.Int("failed", countFailed(results)))
	return results
}

func (r *Runner) auditItem(ctx context.Context, id string, record types.MetadataRecord, logger *zap.Logger) (result types.BatchItemResult) {
	result.ID = id

	if err := ctx.Err(); err != nil {
		result.Error = err.Error()
		return result
	}

	if r.Metrics != nil {
		r.Metrics.BatchInFlight.Inc()
		defer r.Metrics.BatchInFlight.Dec()
	}

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			result.Report = nil
			result.Error = fmt.Sprintf("audit panicked: %v", p)
			logger.Error("audit panicked", zap.String("id", id), zap.Any("panic", p))
			r.Metrics.ObserveAudit(time.Since(start).Seconds(), 0, fmt.Errorf("%s", result.Error))
		}
	}()

	report, err := r.Auditor.Audit(record)
	if err != nil {
		r.Metrics.ObserveAudit(time.Since(start).Seconds(), 0, err)
		logger.Warn("audit failed", zap.String("id", id), zap.Error(err))
		result.Error = err.Error()
		return result
	}

	r.Metrics.ObserveAudit(time.Since(start).Seconds(), report.OverallScore, nil)
	logger.Debug("audit complete",
		zap.String("id", id),
		zap.Int("overall_score", report.OverallScore),
		zap.String("grade", string(report.Grade)))

	if report.VideoID == "" {
		report.VideoID = id
	}
	result.Report = report
	return result
}

func itemID(rec types.MetadataRecord) string {
	if rec.VideoID != "" {
		return rec.VideoID
	}
	return uuid.NewString()
}

func countFailed(results []types.BatchItemResult) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}
