package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/seo-auditor/internal/types"
)

// Render writes an audit report in the given format
func Render(w io.Writer, report *types.AuditReport, format Format) error {
	if format == FormatJSON {
		return writeJSON(w, report)
	}
	return reportDocument(report).write(w, format)
}

// RenderSummary writes a channel summary in the given format
func RenderSummary(w io.Writer, summary *types.ChannelSummary, format Format) error {
	if format == FormatJSON {
		return writeJSON(w, summary)
	}
	return summaryDocument(summary).write(w, format)
}

// RenderKeywords writes a ranked keyword list in the given format
func RenderKeywords(w io.Writer, research *types.KeywordResearch, format Format) error {
	if format == FormatJSON {
		return writeJSON(w, research)
	}
	return keywordsDocument(research).write(w, format)
}

func reportDocument(r *types.AuditReport) document {
	p := r.ImprovementPotential

	overview := section{
		title:   "Overview",
		headers: []string{"Field", "Value"},
		rows: [][]string{
			{"Video", r.VideoID},
			{"Title", r.Title},
			{"Niche", r.Niche},
			{"Overall score", strconv.Itoa(r.OverallScore)},
			{"Grade", string(r.Grade)},
			{"Potential score", fmt.Sprintf("%d (+%d, %.1f%%)", p.PotentialOverall, p.Gain, p.GainPercentage)},
		},
	}

	facets := section{
		title:        "Facets",
		headers:      []string{"Facet", "Score", "Status", "Issues"},
		rightAligned: []int{2},
	}
	gains := section{
		title:        "Improvement potential",
		headers:      []string{"Facet", "Current", "Potential", "Gain"},
		rightAligned: []int{2, 3, 4},
	}
	for _, f := range types.Facets {
		fs, ok := r.Facets[f]
		if !ok {
			continue
		}
		facets.rows = append(facets.rows, []string{f.Label(), strconv.Itoa(fs.Score), string(fs.Status), strings.Join(fs.Issues, "; ")})

		g := p.PerFacet[f]
		gains.rows = append(gains.rows, []string{f.Label(), strconv.Itoa(g.Current), strconv.Itoa(g.Potential), "+" + strconv.Itoa(g.Gain)})
	}

	recs := section{
		title:   "Recommendations",
		headers: []string{"Priority", "Category", "Message", "Details"},
	}
	for _, rec := range r.Recommendations {
		recs.rows = append(recs.rows, []string{string(rec.Priority), rec.Category, rec.Message, strings.Join(rec.Details, "\n")})
	}

	actions := section{
		title:        "Priority actions",
		headers:      []string{"#", "Action", "Priority", "Score", "Quick fix"},
		rightAligned: []int{1, 4},
	}
	for i, a := range r.PriorityActions {
		actions.rows = append(actions.rows, []string{strconv.Itoa(i + 1), a.Action, string(a.Priority), strconv.Itoa(a.CurrentScore), a.QuickFix})
	}

	heading := "SEO audit"
	if r.VideoID != "" {
		heading = fmt.Sprintf("SEO audit: %s", r.VideoID)
	}
	return document{heading: heading, sections: []section{overview, facets, recs, actions, gains}}
}

func summaryDocument(s *types.ChannelSummary) document {
	overview := section{
		title:   "Overview",
		headers: []string{"Field", "Value"},
		rows: [][]string{
			{"Channel", s.Channel},
			{"Videos audited", strconv.Itoa(s.TotalAudited)},
			{"Successful", strconv.Itoa(s.Successful)},
			{"Failed", strconv.Itoa(s.Failed)},
			{"Average score", fmt.Sprintf("%.1f", s.AverageScore)},
			{"Average grade", string(s.AverageGrade)},
		},
	}

	dist := section{
		title:        "Score distribution",
		headers:      []string{"Band", "Videos"},
		rightAligned: []int{2},
		rows: [][]string{
			{"Excellent (90-100)", strconv.Itoa(s.Distribution.Excellent)},
			{"Good (70-89)", strconv.Itoa(s.Distribution.Good)},
			{"Fair (50-69)", strconv.Itoa(s.Distribution.Fair)},
			{"Poor (<50)", strconv.Itoa(s.Distribution.Poor)},
		},
	}

	sections := []section{
		overview,
		dist,
		performerSection("Top performers", s.TopPerformers),
		performerSection("Bottom performers", s.BottomPerformers),
	}

	if len(s.Failures) > 0 {
		failures := section{title: "Failures", headers: []string{"Video", "Error"}}
		for _, f := range s.Failures {
			failures.rows = append(failures.rows, []string{f.ID, f.Error})
		}
		sections = append(sections, failures)
	}

	heading := "Channel SEO summary"
	if s.Channel != "" {
		heading = fmt.Sprintf("Channel SEO summary: %s", s.Channel)
	}
	return document{heading: heading, sections: sections}
}

func performerSection(title string, performers []types.Performer) section {
	s := section{
		title:        title,
		headers:      []string{"Video", "Title", "Score", "Grade"},
		rightAligned: []int{3},
	}
	for _, p := range performers {
		s.rows = append(s.rows, []string{p.ID, p.Title, strconv.Itoa(p.OverallScore), string(p.Grade)})
	}
	return s
}

func keywordsDocument(k *types.KeywordResearch) document {
	ranked := section{
		title:        "Ranked keywords",
		headers:      []string{"#", "Keyword", "Score", "Length", "Competition", "Relevance"},
		rightAligned: []int{1, 3, 4, 6},
	}
	for i, kw := range k.Ranked {
		ranked.rows = append(ranked.rows, []string{
			strconv.Itoa(i + 1),
			kw.Keyword,
			strconv.FormatFloat(kw.Score, 'f', -1, 64),
			strconv.Itoa(kw.Length),
			string(kw.Competition),
			strconv.Itoa(kw.Relevance),
		})
	}

	sections := []section{ranked}
	if len(k.Recommendations) > 0 {
		recs := section{title: "Recommendations", headers: []string{"Recommendation"}}
		for _, r := range k.Recommendations {
			recs.rows = append(recs.rows, []string{r})
		}
		sections = append(sections, recs)
	}

	heading := "Keyword research"
	if k.Niche != "" {
		heading = fmt.Sprintf("Keyword research: %s", k.Niche)
	}
	return document{heading: heading, sections: sections}
}
