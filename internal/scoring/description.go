package scoring

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/keywords"
	"github.com/jonathan/seo-auditor/internal/types"
)

// ScoreDescription scores a video description. Keyword density is measured in the lead window,
// the part of the description shown in search results.
func ScoreDescription(text, niche string, cfg *config.ScoringConfig) types.FacetScore {
	if strings.TrimSpace(text) == "" {
		return missing("Description is missing", "Add a description to your video - it's crucial for SEO")
	}

	p := cfg.Description
	wordCount := len(strings.Fields(text))
	charCount := utf8.RuneCountInString(text)
	hashtagCount := strings.Count(text, "#")

	lead := strings.ToLower(firstRunes(text, p.LeadWindow))
	density := make(map[string]int)
	leadHits := 0
	for _, term := range keywords.TermsOrFallback(niche, cfg.Keywords) {
		n := strings.Count(lead, term)
		density[term] = n
		leadHits += n
	}

	score := 0
	issues := make([]string, 0)
	recs := make([]string, 0)

	// Word count
	switch {
	case wordCount >= p.WordsFull:
		score += p.WordsFullPoints
	case wordCount >= p.WordsPartial:
		score += p.WordsPartialPoints
		recs = append(recs, fmt.Sprintf("Expand description to at least %d words for better SEO", p.WordsFull))
	case wordCount >= p.WordsMinimum:
		score += p.WordsMinimumPoints
		recs = append(recs, fmt.Sprintf("Description is too short - aim for %d+ words", p.WordsFull))
	default:
		issues = append(issues, fmt.Sprintf("Description is too short (%d words)", wordCount))
		recs = append(recs, fmt.Sprintf("Significantly expand description - aim for %d+ words", p.WordsFull))
	}

	// Character count
	switch {
	case charCount >= p.CharsFull:
		score += p.CharsFullPoints
	case charCount >= p.CharsPartial:
		score += p.CharsPartialPoints
		recs = append(recs, fmt.Sprintf("Expand description to %d+ characters", p.CharsFull))
	default:
		issues = append(issues, fmt.Sprintf("Description is too short (%d characters)", charCount))
		recs = append(recs, fmt.Sprintf("Expand description to at least %d characters", p.CharsFull))
	}

	// Hashtags
	switch {
	case p.HashtagsOptimal.Contains(hashtagCount):
		score += p.HashtagFullPoints
	case hashtagCount >= p.HashtagsMinimum && hashtagCount < p.HashtagsOptimal.Min:
		score += p.HashtagNearPoints
		recs = append(recs, fmt.Sprintf("Add more hashtags (%d-%d is optimal)", p.HashtagsOptimal.Min, p.HashtagsOptimal.Max))
	case hashtagCount > p.HashtagsOptimal.Max:
		score += p.HashtagNearPoints
		recs = append(recs, fmt.Sprintf("Consider reducing hashtags to %d-%d for better focus", p.HashtagsOptimal.Min, p.HashtagsOptimal.Max))
	default:
		issues = append(issues, fmt.Sprintf("Not enough hashtags (%d)", hashtagCount))
		recs = append(recs, fmt.Sprintf("Add %d-%d relevant hashtags", p.HashtagsOptimal.Min, p.HashtagsOptimal.Max))
	}

	// Keyword density in the lead window
	switch {
	case leadHits >= p.LeadHitsFull:
		score += p.LeadFullPoints
	case leadHits >= p.LeadHitsPartial:
		score += p.LeadPartialPoints
		recs = append(recs, fmt.Sprintf("Include more keywords in first %d characters (visible in search)", p.LeadWindow))
	default:
		issues = append(issues, fmt.Sprintf("Low keyword density in first %d characters", p.LeadWindow))
		recs = append(recs, "Add more keywords to the beginning of description")
	}

	hasLinks := containsAnyMarker(strings.ToLower(text), p.LinkMarkers)
	if hasLinks {
		score += p.LinkPoints
	} else {
		recs = append(recs, "Add links to your channel, playlists, or social media")
	}

	hasStructure := containsAnyMarker(text, p.StructureMarkers)
	if hasStructure {
		score += p.StructurePoints
	} else {
		recs = append(recs, "Use formatting (dividers, sections) to improve readability")
	}

	final := finalScore(float64(score))
	return types.FacetScore{
		Score:           final,
		Status:          StatusFor(final, cfg.Status),
		Issues:          issues,
		Recommendations: orDefault(recs, "Description looks good!"),
		Details: types.FacetDetails{
			Description: &types.DescriptionDetails{
				WordCount:          wordCount,
				CharacterCount:     charCount,
				HashtagCount:       hashtagCount,
				LeadKeywordDensity: density,
				LeadKeywordHits:    leadHits,
				HasLinks:           hasLinks,
				HasStructure:       hasStructure,
			},
		},
	}
}
