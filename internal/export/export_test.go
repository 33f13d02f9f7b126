package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/seo-auditor/internal/audit"
	"github.com/jonathan/seo-auditor/internal/types"
)

func sampleReport(t *testing.T) *types.AuditReport {
	t.Helper()
	report, err := audit.New(nil).Audit(types.MetadataRecord{
		VideoID: "vid42",
		Title:   "Turkish Rock <Live> From Istanbul",
		Tags:    []string{"turkish rock", "istanbul live"},
		Niche:   "turkish rock",
	})
	require.NoError(t, err)
	return report
}

func sampleSummary() *types.ChannelSummary {
	return &types.ChannelSummary{
		Channel:      "@anatolianrock",
		TotalAudited: 3,
		Successful:   2,
		Failed:       1,
		AverageScore: 71.5,
		AverageGrade: "B+",
		Distribution: types.ScoreDistribution{Good: 1, Fair: 1},
		TopPerformers: []types.Performer{
			{ID: "v1", Title: "First", OverallScore: 80, Grade: "A"},
			{ID: "v2", Title: "Second", OverallScore: 63, Grade: "B"},
		},
		BottomPerformers: []types.Performer{
			{ID: "v2", Title: "Second", OverallScore: 63, Grade: "B"},
			{ID: "v1", Title: "First", OverallScore: 80, Grade: "A"},
		},
		Failures: []types.ItemFailure{{ID: "v3", Error: "video not found"}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"TEXT", FormatText},
		{" markdown ", FormatMarkdown},
		{"md", FormatMarkdown},
		{"html", FormatHTML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseFormat_Unsupported(t *testing.T) {
	_, err := ParseFormat("pdf")
	var argErr *types.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "pdf", argErr.Value)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestRender_JSON(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, FormatJSON))

	var decoded types.AuditReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.OverallScore, decoded.OverallScore)
	assert.Equal(t, report.Grade, decoded.Grade)
	assert.Len(t, decoded.Facets, 4)
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), FormatText))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "SEO audit: vid42"))
	assert.Contains(t, out, "Turkish Rock <Live> From Istanbul")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Optimize Description")
	assert.Contains(t, out, "╭")
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), FormatMarkdown))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# SEO audit: vid42"))
	assert.Contains(t, out, "## Facets")
	assert.Contains(t, strings.ToLower(out), "| facet |")
}

func TestRender_HTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), FormatHTML))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<table")
	assert.Contains(t, out, "<h2>Priority actions</h2>")
	assert.Contains(t, out, "&lt;Live&gt;")
	assert.NotContains(t, out, "<Live>")
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}

func TestRender_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleReport(t), Format("pdf"))

	var argErr *types.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Zero(t, buf.Len())
}

func TestRenderSummary(t *testing.T) {
	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderSummary(&buf, sampleSummary(), format))

			out := buf.String()
			assert.Contains(t, out, "@anatolianrock")
			assert.Contains(t, out, "video not found")
			if format != FormatJSON {
				assert.Contains(t, out, "71.5")
				assert.Contains(t, out, "Top performers")
			}
		})
	}
}

func TestRenderSummary_NoFailuresSection(t *testing.T) {
	s := sampleSummary()
	s.Failures = nil

	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, s, FormatMarkdown))
	assert.NotContains(t, buf.String(), "## Failures")
}

func TestRenderKeywords(t *testing.T) {
	research := &types.KeywordResearch{
		Niche: "anatolian rock",
		Ranked: []types.RankedKeyword{
			{Keyword: "anatolian rock live", Score: 25, Length: 19, Competition: types.CompetitionLow, Relevance: 2},
		},
		Recommendations: []string{"Top recommended keywords: anatolian rock live"},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderKeywords(&buf, research, FormatText))
	out := buf.String()
	assert.Contains(t, out, "anatolian rock live")
	assert.Contains(t, out, "Low")
	assert.Contains(t, out, "Top recommended keywords")
}
