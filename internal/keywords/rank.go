package keywords

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/types"
)

// Result count bands used to infer competition from a search
const (
	lowCompetitionBelow    = 5
	mediumCompetitionBelow = 20
)

const topRecommended = 5

// Rank scores candidate keywords for a niche and returns them sorted by score (descending).
// Candidates are de-duplicated case-insensitively (first occurrence wins); blank candidates are dropped.
// Ties keep input order, so ranking an already ranked list with the same hints does not reorder it.
func Rank(candidates []string, niche string, hints []types.CompetitionHint, policy config.KeywordPolicy) []types.RankedKeyword {
	terms := TermsOrFallback(niche, policy)

	seen := make(map[string]bool, len(candidates))
	ranked := make([]types.RankedKeyword, 0, len(candidates))
	for _, candidate := range candidates {
		keyword := strings.TrimSpace(candidate)
		lower := strings.ToLower(keyword)
		if keyword == "" || seen[lower] {
			continue
		}
		seen[lower] = true

		length := utf8.RuneCountInString(keyword)
		relevance := len(TermsIn(lower, terms))
		competition := inheritCompetition(lower, hints)

		score := lengthPoints(length, policy) +
			relevance*policy.RelevancePoints +
			competitionPoints(competition, policy)

		ranked = append(ranked, types.RankedKeyword{
			Keyword:     keyword,
			Score:       float64(score),
			Length:      length,
			Competition: competition,
			Relevance:   relevance,
		})
	}

	// Sort by score (descending), ties in input order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// CompetitionFromResultCount infers competition from the number of search results for a query
func CompetitionFromResultCount(n int) types.Competition {
	switch {
	case n < lowCompetitionBelow:
		return types.CompetitionLow
	case n < mediumCompetitionBelow:
		return types.CompetitionMedium
	default:
		return types.CompetitionHigh
	}
}

// Recommendations summarizes a ranked list into usage advice
func Recommendations(ranked []types.RankedKeyword, policy config.KeywordPolicy) []string {
	recommendations := make([]string, 0, 2)
	if len(ranked) == 0 {
		return recommendations
	}

	n := len(ranked)
	if n > topRecommended {
		n = topRecommended
	}
	top := make([]string, 0, n)
	for _, k := range ranked[:n] {
		top = append(top, k.Keyword)
	}
	recommendations = append(recommendations, fmt.Sprintf("Top recommended keywords: %s", strings.Join(top, ", ")))

	for _, k := range ranked {
		if k.Length > policy.LongTailLength {
			recommendations = append(recommendations, fmt.Sprintf("Consider long-tail keywords for less competition: %s", k.Keyword))
			break
		}
	}

	return recommendations
}

// inheritCompetition returns the competition of the first hint whose query occurs in the keyword.
// A matching hint without a level means Medium.
func inheritCompetition(lowerKeyword string, hints []types.CompetitionHint) types.Competition {
	for _, hint := range hints {
		query := strings.ToLower(strings.TrimSpace(hint.Query))
		if query == "" {
			continue
		}
		if strings.Contains(lowerKeyword, query) {
			if hint.Competition == "" {
				return types.CompetitionMedium
			}
			return types.NormalizeCompetition(hint.Competition)
		}
	}
	return types.CompetitionMedium
}

func lengthPoints(length int, policy config.KeywordPolicy) int {
	switch {
	case policy.LengthOptimal.Contains(length):
		return policy.LengthOptimalPoints
	case policy.LengthAcceptable.Contains(length):
		return policy.LengthAcceptablePoints
	default:
		return 0
	}
}

// competitionPoints awards more for lower competition; unknown levels score as High
func competitionPoints(c types.Competition, policy config.KeywordPolicy) int {
	if points, ok := policy.CompetitionPoints[c]; ok {
		return points
	}
	return policy.CompetitionPoints[types.CompetitionHigh]
}
