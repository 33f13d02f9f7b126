package audit

import (
	"math"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/types"
)

// EstimatePotential projects each facet to min(score + gain cap, 100) and recomputes the overall score
func EstimatePotential(facets FacetSet, cfg *config.ScoringConfig) types.ImprovementPotential {
	perFacet := make(map[types.Facet]types.FacetGain, len(types.Facets))
	for _, f := range types.Facets {
		current := facets[f].Score
		potential := min(current+cfg.GainCaps[f], 100)
		perFacet[f] = types.FacetGain{
			Current:   current,
			Potential: potential,
			Gain:      potential - current,
		}
	}

	currentOverall := weightedFloor(func(f types.Facet) int { return perFacet[f].Current }, cfg)
	potentialOverall := weightedFloor(func(f types.Facet) int { return perFacet[f].Potential }, cfg)
	gain := potentialOverall - currentOverall

	return types.ImprovementPotential{
		CurrentOverall:   currentOverall,
		PotentialOverall: potentialOverall,
		Gain:             gain,
		GainPercentage:   roundTo(float64(gain)/float64(max(currentOverall, 1))*100, 1),
		PerFacet:         perFacet,
	}
}

// roundTo rounds half away from zero to the given number of decimals
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
