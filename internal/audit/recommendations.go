package audit

import (
	"fmt"
	"sort"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/types"
)

const overallCategory = "overall"

var overallChecklist = []string{
	"Focus on improving title and description first (highest impact)",
	"Add more relevant tags",
	"Optimize thumbnail for better click-through rate",
}

// quickFixFallbacks are used when a facet carries no recommendation of its own
var quickFixFallbacks = map[types.Facet]string{
	types.FacetTitle:       "Review title optimization guidelines",
	types.FacetDescription: "Expand description to 200+ words",
	types.FacetTags:        "Add 20-30 relevant tags",
	types.FacetThumbnail:   "Use high contrast, eye-catching thumbnail",
}

// BuildRecommendations emits one group per facet below the facet threshold and an overall group
// when the overall score is below the overall threshold. High priority groups come first;
// within a tier facet order is kept. Groups are unique by (category, message).
func BuildRecommendations(facets FacetSet, overall int, cfg *config.ScoringConfig) []types.Recommendation {
	p := cfg.Recommendations
	groups := make([]types.Recommendation, 0, len(types.Facets)+1)

	for _, f := range types.Facets {
		score := facets[f]
		if score.Score >= p.FacetThreshold {
			continue
		}
		groups = append(groups, types.Recommendation{
			Priority: priorityOf(f, cfg),
			Category: string(f),
			Message:  fmt.Sprintf("%s needs improvement", f.Label()),
			Details:  copyStrings(score.Recommendations),
		})
	}

	if overall < p.OverallThreshold {
		groups = append(groups, types.Recommendation{
			Priority: types.PriorityHigh,
			Category: overallCategory,
			Message:  "Overall SEO needs significant improvement",
			Details:  copyStrings(overallChecklist),
		})
	}

	groups = dedupe(groups)

	// High priority first, stable within a tier
	sort.SliceStable(groups, func(i, j int) bool {
		return priorityRank(groups[i].Priority) < priorityRank(groups[j].Priority)
	})

	return groups
}

// SelectPriorityActions picks up to MaxPriorityActions of the lowest scoring facets below the
// priority threshold. Ties keep facet order.
func SelectPriorityActions(facets FacetSet, cfg *config.ScoringConfig) []types.PriorityAction {
	p := cfg.Recommendations

	ordered := make([]types.Facet, len(types.Facets))
	copy(ordered, types.Facets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return facets[ordered[i]].Score < facets[ordered[j]].Score
	})

	actions := make([]types.PriorityAction, 0, p.MaxPriorityActions)
	for _, f := range ordered {
		if len(actions) >= p.MaxPriorityActions {
			break
		}
		score := facets[f]
		if score.Score >= p.PriorityThreshold {
			continue
		}

		quickFix := quickFixFallbacks[f]
		if len(score.Recommendations) > 0 {
			quickFix = score.Recommendations[0]
		}

		priority := priorityOf(f, cfg)
		actions = append(actions, types.PriorityAction{
			Facet:        f,
			Action:       fmt.Sprintf("Optimize %s", f.Label()),
			Priority:     priority,
			Impact:       priority,
			CurrentScore: score.Score,
			QuickFix:     quickFix,
		})
	}

	return actions
}

func priorityOf(f types.Facet, cfg *config.ScoringConfig) types.Priority {
	if cfg.IsHighPriority(f) {
		return types.PriorityHigh
	}
	return types.PriorityMedium
}

func priorityRank(p types.Priority) int {
	if p == types.PriorityHigh {
		return 0
	}
	return 1
}

func dedupe(groups []types.Recommendation) []types.Recommendation {
	type key struct{ category, message string }
	seen := make(map[key]bool, len(groups))
	out := groups[:0]
	for _, g := range groups {
		k := key{g.Category, g.Message}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, g)
	}
	return out
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
