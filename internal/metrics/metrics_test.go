package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAudit(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveAudit(0.01, 87, nil)
	m.ObserveAudit(0.02, 40, nil)
	m.ObserveAudit(0.001, 0, errors.New("invalid record"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuditsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditsTotal.WithLabelValues(OutcomeFailure)))
	var duration, score dto.Metric
	require.NoError(t, m.AuditDuration.Write(&duration))
	require.NoError(t, m.OverallScore.Write(&score))
	assert.Equal(t, uint64(3), duration.GetHistogram().GetSampleCount())
	// failures are not scored
	assert.Equal(t, uint64(2), score.GetHistogram().GetSampleCount())
	assert.Equal(t, 127.0, score.GetHistogram().GetSampleSum())

	count, err := testutil.GatherAndCount(reg, "seo_audits_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestObserveAudit_NilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveAudit(1, 50, nil) })
}

func TestNew_RegistersOncePerRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
	assert.NotPanics(t, func() { New(prometheus.NewRegistry()) })
}
