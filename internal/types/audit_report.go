package types

// Grade is the letter grade for an overall score
type Grade string

// Recommendation groups the suggestions of one category under a priority
type Recommendation struct {
	Priority Priority `json:"priority"`
	Category string   `json:"category"`
	Message  string   `json:"message"`
	Details  []string `json:"details"`
}

// PriorityAction is the single quick fix surfaced for a low-scoring facet
type PriorityAction struct {
	Facet        Facet    `json:"facet"`
	Action       string   `json:"action"`
	Priority     Priority `json:"priority"`
	Impact       Priority `json:"impact"`
	CurrentScore int      `json:"current_score"`
	QuickFix     string   `json:"quick_fix"`
}

// FacetGain is the projected improvement of one facet
type FacetGain struct {
	Current   int `json:"current"`
	Potential int `json:"potential"`
	Gain      int `json:"gain"`
}

// ImprovementPotential estimates the overall score after applying all recommendations
type ImprovementPotential struct {
	CurrentOverall   int                 `json:"current_overall"`
	PotentialOverall int                 `json:"potential_overall"`
	Gain             int                 `json:"gain"`
	GainPercentage   float64             `json:"gain_percentage"`
	PerFacet         map[Facet]FacetGain `json:"per_facet"`
}

// AuditReport is the full audit of one metadata record. It is a computed value with no identity.
type AuditReport struct {
	VideoID              string               `json:"video_id,omitempty"`
	Title                string               `json:"title"`
	Niche                string               `json:"niche,omitempty"`
	OverallScore         int                  `json:"overall_score"`
	Grade                Grade                `json:"grade"`
	Facets               map[Facet]FacetScore `json:"facets"`
	Recommendations      []Recommendation     `json:"recommendations"`
	PriorityActions      []PriorityAction     `json:"priority_actions"`
	ImprovementPotential ImprovementPotential `json:"improvement_potential"`
}
