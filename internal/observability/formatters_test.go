package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/seo-auditor/internal/audit"
	"github.com/jonathan/seo-auditor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintAuditReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report, err := audit.New(nil).Audit(types.MetadataRecord{
		VideoID: "dQw4w9WgXcQ",
		Title:   "Song",
		Niche:   "turkish rock",
	})
	require.NoError(t, err)

	p.PrintAuditReport(report)
	output := buf.String()

	assert.Contains(t, output, "SEO AUDIT")
	assert.Contains(t, output, "dQw4w9WgXcQ")
	assert.Contains(t, output, "Title")
	assert.Contains(t, output, "Thumbnail")
	assert.Contains(t, output, "Priority actions")
	assert.Contains(t, output, "Potential:")
}

func TestPrintAuditReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAuditReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]types.Recommendation{
		{
			Priority: types.PriorityHigh,
			Category: "title",
			Message:  "Title needs improvement",
			Details:  []string{"a", "b", "c", "d", "e"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "[HIGH] Title needs improvement")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintRankedKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := make([]types.RankedKeyword, 7)
	for i := range ranked {
		ranked[i] = types.RankedKeyword{Keyword: "kw" + strings.Repeat("x", i), Score: float64(100 - i), Competition: types.CompetitionLow}
	}
	p.PrintRankedKeywords(&types.KeywordResearch{TotalCandidates: 7, Ranked: ranked})
	output := buf.String()

	assert.Contains(t, output, "TOP KEYWORDS")
	assert.Contains(t, output, "#1  kw")
	assert.Contains(t, output, "Competition: Low")
	assert.Contains(t, output, "... and 2 more keywords")
}

func TestPrintRankedKeywords_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRankedKeywords(&types.KeywordResearch{})
	assert.Empty(t, buf.String())
}

func TestPrintChannelSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintChannelSummary(&types.ChannelSummary{
		Channel:       "@erkinkoray",
		TotalAudited:  3,
		Successful:    2,
		Failed:        1,
		AverageScore:  72.5,
		AverageGrade:  "B",
		Distribution:  types.ScoreDistribution{Good: 1, Fair: 1},
		TopPerformers: []types.Performer{{ID: "v1", Title: "Cemalim", OverallScore: 80}},
		Failures:      []types.ItemFailure{{ID: "v3", Error: "video not found"}},
	})
	output := buf.String()

	assert.Contains(t, output, "CHANNEL SUMMARY")
	assert.Contains(t, output, "@erkinkoray")
	assert.Contains(t, output, "72.5 (B)")
	assert.Contains(t, output, "good 1")
	assert.Contains(t, output, "Cemalim")
	assert.Contains(t, output, "v3: video not found")
	assert.NotContains(t, output, "Needs work")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("ş", 100))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "line should fit in the box: %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}
