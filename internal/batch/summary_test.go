package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/types"
)

func result(id string, score int) types.BatchItemResult {
	return types.BatchItemResult{
		ID:     id,
		Report: &types.AuditReport{VideoID: id, Title: "title " + id, OverallScore: score, Grade: "X"},
	}
}

func ids(performers []types.Performer) []string {
	out := make([]string, len(performers))
	for i, p := range performers {
		out[i] = p.ID
	}
	return out
}

func TestSummarize(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	results := []types.BatchItemResult{
		result("a", 95),
		result("b", 75),
		{ID: "broken", Error: "invalid metadata record"},
		result("c", 55),
		result("d", 30),
		result("e", 88),
		result("f", 60),
	}

	s := Summarize("@channel", results, &cfg)

	assert.Equal(t, "@channel", s.Channel)
	assert.Equal(t, 7, s.TotalAudited)
	assert.Equal(t, 6, s.Successful)
	assert.Equal(t, 1, s.Failed)
	assert.InDelta(t, 67.2, s.AverageScore, 1e-9)
	assert.Equal(t, types.Grade("B"), s.AverageGrade)
	assert.Equal(t, types.ScoreDistribution{Excellent: 1, Good: 2, Fair: 2, Poor: 1}, s.Distribution)
	assert.Equal(t, []string{"a", "e", "b", "f", "c"}, ids(s.TopPerformers))
	assert.Equal(t, []string{"d", "c", "f", "b", "e"}, ids(s.BottomPerformers))
	assert.Equal(t, []types.ItemFailure{{ID: "broken", Error: "invalid metadata record"}}, s.Failures)
}

func TestSummarize_BandEdges(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	results := []types.BatchItemResult{
		result("a", 90), result("b", 89), result("c", 70), result("d", 69),
		result("e", 50), result("f", 49),
	}

	s := Summarize("", results, &cfg)
	assert.Equal(t, types.ScoreDistribution{Excellent: 1, Good: 2, Fair: 2, Poor: 1}, s.Distribution)
}

func TestSummarize_TiesKeepInputOrder(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	results := []types.BatchItemResult{result("x", 70), result("y", 70), result("z", 70)}

	s := Summarize("", results, &cfg)
	assert.Equal(t, []string{"x", "y", "z"}, ids(s.TopPerformers))
	assert.Equal(t, []string{"x", "y", "z"}, ids(s.BottomPerformers))
}

func TestSummarize_NoSuccesses(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	s := Summarize("", []types.BatchItemResult{{ID: "a", Error: "boom"}}, &cfg)

	assert.Equal(t, NoGrade, s.AverageGrade)
	assert.Equal(t, 0.0, s.AverageScore)
	assert.Equal(t, 0, s.Successful)
	assert.Equal(t, 1, s.Failed)
	assert.Empty(t, s.TopPerformers)
	require.Len(t, s.Failures, 1)

	empty := Summarize("", nil, &cfg)
	assert.Equal(t, NoGrade, empty.AverageGrade)
	assert.Equal(t, 0, empty.TotalAudited)
}
