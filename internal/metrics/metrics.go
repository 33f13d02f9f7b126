// Package metrics defines the Prometheus collectors for audits, batches and the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Audit outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics groups the collectors. Register it once per registry.
type Metrics struct {
	AuditsTotal    *prometheus.CounterVec
	AuditDuration  prometheus.Histogram
	OverallScore   prometheus.Histogram
	BatchInFlight  prometheus.Gauge
	KeywordsRanked prometheus.Counter
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AuditsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seo_audits_total",
				Help: "Total number of video audits by outcome",
			},
			[]string{"outcome"},
		),
		AuditDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seo_audit_duration_seconds",
				Help:    "Duration of a single video audit in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		OverallScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seo_overall_score",
				Help:    "Distribution of overall SEO scores",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
		),
		BatchInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "seo_batch_audits_in_flight",
				Help: "Number of batch audits currently running",
			},
		),
		KeywordsRanked: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "seo_keywords_ranked_total",
				Help: "Total number of keywords ranked",
			},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seo_http_requests_total",
				Help: "Total number of HTTP API requests",
			},
			[]string{"route", "code"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "seo_http_request_duration_seconds",
				Help: "Duration of HTTP API requests in seconds",
			},
			[]string{"route"},
		),
	}
}

// ObserveAudit records one audit attempt. score is ignored for failures.
func (m *Metrics) ObserveAudit(seconds float64, score int, err error) {
	if m == nil {
		return
	}
	m.AuditDuration.Observe(seconds)
	if err != nil {
		m.AuditsTotal.WithLabelValues(OutcomeFailure).Inc()
		return
	}
	m.AuditsTotal.WithLabelValues(OutcomeSuccess).Inc()
	m.OverallScore.Observe(float64(score))
}
