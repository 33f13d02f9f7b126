package scoring

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/keywords"
	"github.com/jonathan/seo-auditor/internal/types"
)

// ScoreTags scores a tag list for count, niche keyword coverage, length and relevance to the title
func ScoreTags(tags []string, title, niche string, cfg *config.ScoringConfig) types.FacetScore {
	if len(tags) == 0 {
		return missing("Tags are missing", "Add tags to your video - they help with discoverability")
	}

	p := cfg.Tags
	count := len(tags)

	lowerTags := make([]string, count)
	totalRunes := 0
	for i, tag := range tags {
		lowerTags[i] = strings.ToLower(tag)
		totalRunes += utf8.RuneCountInString(tag)
	}
	avgLength := float64(totalRunes) / float64(count)

	score := 0.0
	issues := make([]string, 0)
	recs := make([]string, 0)

	// Count
	switch {
	case p.CountOptimal.Contains(count):
		score += float64(p.CountOptimalPoints)
	case p.CountLow.Contains(count):
		score += float64(p.CountNearPoints)
		recs = append(recs, fmt.Sprintf("Add more tags (%d-%d is optimal)", p.CountOptimal.Min, p.CountOptimal.Max))
	case p.CountHigh.Contains(count):
		score += float64(p.CountNearPoints)
		recs = append(recs, fmt.Sprintf("Consider reducing tags to %d-%d for better focus", p.CountOptimal.Min, p.CountOptimal.Max))
	case count < p.CountLow.Min:
		issues = append(issues, fmt.Sprintf("Not enough tags (%d)", count))
		recs = append(recs, fmt.Sprintf("Add more tags - aim for %d-%d tags", p.CountOptimal.Min, p.CountOptimal.Max))
	default:
		recs = append(recs, fmt.Sprintf("Too many tags - consider reducing to %d-%d", p.CountOptimal.Min, p.CountOptimal.Max))
	}

	// Keyword coverage: a term is covered when some tag contains it
	terms := keywords.TermsOrFallback(niche, cfg.Keywords)
	missingTerms := make([]string, 0)
	for _, term := range terms {
		if !anyContains(lowerTags, term) {
			missingTerms = append(missingTerms, term)
		}
	}
	covered := len(terms) - len(missingTerms)
	if len(terms) > 0 {
		score += float64(covered*p.CoveragePoints) / float64(len(terms))
	}
	if len(missingTerms) > 0 {
		recs = append(recs, fmt.Sprintf("Add tags with keywords: %s", strings.Join(missingTerms, ", ")))
	}

	// Average length
	switch {
	case p.LengthOptimal.ContainsFloat(avgLength):
		score += float64(p.LengthOptimalPoints)
	case p.LengthAcceptable.ContainsFloat(avgLength):
		score += float64(p.LengthAcceptablePoints)
	default:
		recs = append(recs, fmt.Sprintf("Optimize tag lengths (%d-%d characters is optimal)", p.LengthOptimal.Min, p.LengthOptimal.Max))
	}

	// Relevance: a tag is relevant when any of its words appears in the title
	lowerTitle := strings.ToLower(title)
	relevant := 0
	for _, tag := range lowerTags {
		for _, word := range strings.Fields(tag) {
			if strings.Contains(lowerTitle, word) {
				relevant++
				break
			}
		}
	}
	relevancePoints := math.Min(float64(relevant*p.RelevancePoints)/float64(count), float64(p.RelevancePoints))
	score += relevancePoints
	if relevancePoints < float64(p.RelevanceAdviceBelow) {
		recs = append(recs, "Ensure tags are relevant to your video title")
	}

	final := finalScore(score)
	return types.FacetScore{
		Score:           final,
		Status:          StatusFor(final, cfg.Status),
		Issues:          issues,
		Recommendations: orDefault(recs, "Tags look good!"),
		Details: types.FacetDetails{
			Tags: &types.TagDetails{
				TagCount:        count,
				AverageLength:   avgLength,
				KeywordCoverage: fmt.Sprintf("%d/%d", covered, len(terms)),
				MissingKeywords: missingTerms,
				RelevantTags:    relevant,
				RelevancePoints: relevancePoints,
			},
		},
	}
}

func anyContains(values []string, term string) bool {
	for _, v := range values {
		if strings.Contains(v, term) {
			return true
		}
	}
	return false
}
