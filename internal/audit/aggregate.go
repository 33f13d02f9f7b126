// Package audit combines facet scores into an audit report with recommendations,
// priority actions and an improvement estimate.
package audit

import (
	"math"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/types"
)

// weightEpsilon absorbs float error in the weighted sum so exact multiples floor correctly
const weightEpsilon = 1e-9

// FacetSet holds one score per facet. An absent facet counts as score 0.
type FacetSet map[types.Facet]types.FacetScore

// Aggregate returns floor(Σ weight × score) over all facets
func Aggregate(facets FacetSet, cfg *config.ScoringConfig) int {
	return weightedFloor(func(f types.Facet) int { return facets[f].Score }, cfg)
}

// Grade maps an overall score to its letter grade
func Grade(score int, cfg *config.ScoringConfig) types.Grade {
	for _, band := range cfg.Grades {
		if score >= band.Min {
			return band.Grade
		}
	}
	return cfg.Grades[len(cfg.Grades)-1].Grade
}

func weightedFloor(scoreOf func(types.Facet) int, cfg *config.ScoringConfig) int {
	sum := 0.0
	for _, f := range types.Facets {
		sum += cfg.Weights[f] * float64(scoreOf(f))
	}
	return int(math.Floor(sum + weightEpsilon))
}
