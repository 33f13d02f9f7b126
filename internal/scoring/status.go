// Package scoring implements the per-facet scorers for title, description, tags and thumbnail.
// Every scorer is a pure function of its inputs and the scoring policy.
package scoring

import (
	"math"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/types"
)

const maxScore = 100

// StatusFor maps a score to its status band
func StatusFor(score int, t config.StatusThresholds) types.Status {
	switch {
	case score >= t.Excellent:
		return types.StatusExcellent
	case score >= t.Good:
		return types.StatusGood
	case score >= t.NeedsImprovement:
		return types.StatusNeedsImprovement
	default:
		return types.StatusPoor
	}
}

// finalScore clamps a raw score to [0, 100] and floors it
func finalScore(raw float64) int {
	if raw > maxScore {
		raw = maxScore
	}
	if raw < 0 {
		raw = 0
	}
	return int(math.Floor(raw))
}

// missing builds the canned result for an absent facet
func missing(issue, recommendation string) types.FacetScore {
	return types.FacetScore{
		Score:           0,
		Status:          types.StatusMissing,
		Issues:          []string{issue},
		Recommendations: []string{recommendation},
	}
}

// orDefault returns recs, or a single praise line when there is nothing to recommend
func orDefault(recs []string, praise string) []string {
	if len(recs) == 0 {
		return []string{praise}
	}
	return recs
}
