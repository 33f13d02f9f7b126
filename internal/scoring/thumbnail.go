package scoring

import (
	"strings"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/types"
)

// Thumbnail notes. No image analysis is performed; the score is a fixed baseline.
const (
	thumbnailUnknownNote = "manual review required"
	thumbnailReviewNote  = "Full thumbnail analysis requires image processing; review the checklist manually"
)

// ScoreThumbnail returns the baseline thumbnail score. A present ref yields the visual review checklist.
func ScoreThumbnail(ref string, cfg *config.ScoringConfig) types.FacetScore {
	p := cfg.Thumbnail
	if strings.TrimSpace(ref) == "" {
		return types.FacetScore{
			Score:           p.Baseline,
			Status:          types.StatusUnknown,
			Issues:          []string{"Thumbnail URL not available"},
			Recommendations: []string{"Ensure thumbnail is eye-catching and relevant to title"},
			Note:            thumbnailUnknownNote,
		}
	}

	checklist := make([]string, len(p.Checklist))
	copy(checklist, p.Checklist)
	return types.FacetScore{
		Score:           p.Baseline,
		Status:          types.StatusNeedsManualReview,
		Issues:          []string{},
		Recommendations: checklist,
		Details:         types.FacetDetails{Thumbnail: &types.ThumbnailDetails{Ref: ref}},
		Note:            thumbnailReviewNote,
	}
}
