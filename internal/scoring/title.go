package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/keywords"
	"github.com/jonathan/seo-auditor/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ScoreTitle scores a video title against the niche keywords
func ScoreTitle(title, niche string, cfg *config.ScoringConfig) types.FacetScore {
	if strings.TrimSpace(title) == "" {
		return missing("Title is missing", "Add a title to your video")
	}

	p := cfg.Title
	analysis := keywords.AnalyzeTitle(title, niche, cfg)
	terms := keywords.TermsOrFallback(niche, cfg.Keywords)

	score := 0
	issues := make([]string, 0)
	recs := make([]string, 0)

	// Length (optimal: 40-60 runes)
	length := analysis.Length
	switch {
	case p.Optimal.Contains(length):
		score += p.OptimalPoints
	case p.Acceptable.Contains(length) && length < p.Optimal.Min:
		score += p.AcceptablePoints
		recs = append(recs, fmt.Sprintf("Consider expanding title to %d-%d characters for better SEO", p.Optimal.Min, p.Optimal.Max))
	case p.Acceptable.Contains(length):
		score += p.AcceptablePoints
		recs = append(recs, fmt.Sprintf("Title is slightly long - consider shortening to %d characters", p.Optimal.Max))
	default:
		issues = append(issues, fmt.Sprintf("Title length (%d chars) is outside optimal range (%d-%d)", length, p.Optimal.Min, p.Optimal.Max))
		if length < p.Acceptable.Min {
			recs = append(recs, fmt.Sprintf("Title is too short - expand to at least %d characters", p.Optimal.Min))
		} else {
			recs = append(recs, fmt.Sprintf("Title is too long - shorten to %d characters or less", p.Optimal.Max))
		}
	}

	// Keyword analysis, capped
	keywordPoints := min(analysis.SEOScore, p.KeywordScoreCap)
	score += keywordPoints

	// Keyword presence
	switch found := len(analysis.KeywordsFound); {
	case found >= 2:
		score += p.MultiKeywordPoints
	case found == 1:
		score += p.SingleKeywordPoints
		recs = append(recs, "Add more relevant keywords to title")
	default:
		issues = append(issues, "No relevant keywords found in title")
		if strings.TrimSpace(niche) != "" {
			recs = append(recs, fmt.Sprintf("Include niche keywords (e.g., '%s')", cases.Title(language.Und).String(niche)))
		} else {
			recs = append(recs, "Include relevant niche keywords in title")
		}
	}

	// Keywords in the lead window carry most weight in search
	lead := strings.ToLower(firstRunes(title, p.LeadWindow))
	inLead := len(keywords.TermsIn(lead, terms)) > 0
	if inLead {
		score += p.LeadPoints
	} else {
		recs = append(recs, fmt.Sprintf("Include main keywords in first %d characters of title", p.LeadWindow))
	}

	final := finalScore(float64(score))
	return types.FacetScore{
		Score:           final,
		Status:          StatusFor(final, cfg.Status),
		Issues:          issues,
		Recommendations: orDefault(recs, "Title looks good!"),
		Details: types.FacetDetails{
			Title: &types.TitleDetails{
				Length:         length,
				WordCount:      analysis.WordCount,
				KeywordsFound:  analysis.KeywordsFound,
				SEOScore:       analysis.SEOScore,
				KeywordPoints:  keywordPoints,
				KeywordsInLead: inLead,
			},
		},
	}
}
