package audit

import (
	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/scoring"
	"github.com/jonathan/seo-auditor/internal/types"
)

// Auditor runs the four facet scorers over a metadata record and assembles the report.
// It holds no mutable state and is safe for concurrent use.
type Auditor struct {
	cfg *config.ScoringConfig
}

// New creates an Auditor for the given policy. A nil cfg uses DefaultScoringConfig.
func New(cfg *config.ScoringConfig) *Auditor {
	if cfg == nil {
		def := config.DefaultScoringConfig()
		cfg = &def
	}
	return &Auditor{cfg: cfg}
}

// Config returns the scoring policy the Auditor was built with
func (a *Auditor) Config() *config.ScoringConfig {
	return a.cfg
}

// Audit scores a record. Only a malformed record is an error; low scores are reported as data.
func (a *Auditor) Audit(record types.MetadataRecord) (*types.AuditReport, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	facets := a.ScoreFacets(record)
	overall := Aggregate(facets, a.cfg)

	return &types.AuditReport{
		VideoID:              record.VideoID,
		Title:                record.Title,
		Niche:                record.Niche,
		OverallScore:         overall,
		Grade:                Grade(overall, a.cfg),
		Facets:               facets,
		Recommendations:      BuildRecommendations(facets, overall, a.cfg),
		PriorityActions:      SelectPriorityActions(facets, a.cfg),
		ImprovementPotential: EstimatePotential(facets, a.cfg),
	}, nil
}

// ScoreFacets runs every facet scorer without validating the record
func (a *Auditor) ScoreFacets(record types.MetadataRecord) FacetSet {
	return FacetSet{
		types.FacetTitle:       scoring.ScoreTitle(record.Title, record.Niche, a.cfg),
		types.FacetDescription: scoring.ScoreDescription(record.Description, record.Niche, a.cfg),
		types.FacetTags:        scoring.ScoreTags(record.Tags, record.Title, record.Niche, a.cfg),
		types.FacetThumbnail:   scoring.ScoreThumbnail(record.Thumbnail(), a.cfg),
	}
}
