package keywords

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/seo-auditor/internal/config"
)

// TitleAnalysis is the keyword-centric view of a single title
type TitleAnalysis struct {
	Length        int      `json:"length"`
	WordCount     int      `json:"word_count"`
	KeywordsFound []string `json:"keywords_found"`
	SEOScore      int      `json:"seo_score"`
}

// AnalyzeTitle measures a title and scores its keyword usage against the niche terms.
// Keywords are matched case-insensitively as substrings.
func AnalyzeTitle(title, niche string, cfg *config.ScoringConfig) TitleAnalysis {
	p := cfg.TitleAnalysis
	lower := strings.ToLower(title)

	analysis := TitleAnalysis{
		Length:        utf8.RuneCountInString(title),
		WordCount:     len(strings.Fields(title)),
		KeywordsFound: TermsIn(lower, TermsOrFallback(niche, cfg.Keywords)),
	}

	score := 0

	// Length
	switch {
	case cfg.Title.Optimal.Contains(analysis.Length):
		score += p.OptimalPoints
	case cfg.Title.Acceptable.Contains(analysis.Length):
		score += p.AcceptablePoints
	default:
		score += p.BasePoints
	}

	// Keywords
	score += len(analysis.KeywordsFound) * p.PointsPerKeyword

	// Word count
	switch {
	case p.WordsOptimal.Contains(analysis.WordCount):
		score += p.WordsOptimalPoints
	case p.WordsAcceptable.Contains(analysis.WordCount):
		score += p.WordsAcceptablePoints
	}

	analysis.SEOScore = score
	return analysis
}
