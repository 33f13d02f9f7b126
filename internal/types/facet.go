package types

import "strings"

// Facet names one audited dimension of video metadata
type Facet string

// Audited facets
const (
	FacetTitle       Facet = "title"
	FacetDescription Facet = "description"
	FacetTags        Facet = "tags"
	FacetThumbnail   Facet = "thumbnail"
)

// Facets is the fixed evaluation order used wherever ties must be broken deterministically.
var Facets = []Facet{FacetTitle, FacetDescription, FacetTags, FacetThumbnail}

// Label returns the capitalized facet name used in messages ("Title", "Tags").
func (f Facet) Label() string {
	if f == "" {
		return ""
	}
	s := string(f)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Status is the qualitative band of a facet score
type Status string

// Facet statuses
const (
	StatusMissing           Status = "missing"
	StatusPoor              Status = "poor"
	StatusNeedsImprovement  Status = "needs_improvement"
	StatusGood              Status = "good"
	StatusExcellent         Status = "excellent"
	StatusUnknown           Status = "unknown"
	StatusNeedsManualReview Status = "needs_manual_review"
)

// Priority of a recommendation or action
type Priority string

// Priorities
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// FacetScore is the result of scoring one facet
type FacetScore struct {
	Score           int          `json:"score"`
	Status          Status       `json:"status"`
	Issues          []string     `json:"issues"`
	Recommendations []string     `json:"recommendations"`
	Details         FacetDetails `json:"details"`
	Note            string       `json:"note,omitempty"`
}

// FacetDetails carries the facet-specific sub-metrics; exactly one field is set.
type FacetDetails struct {
	Title       *TitleDetails       `json:"title,omitempty"`
	Description *DescriptionDetails `json:"description,omitempty"`
	Tags        *TagDetails         `json:"tags,omitempty"`
	Thumbnail   *ThumbnailDetails   `json:"thumbnail,omitempty"`
}

// TitleDetails holds title sub-metrics
type TitleDetails struct {
	Length         int      `json:"length"`
	WordCount      int      `json:"word_count"`
	KeywordsFound  []string `json:"keywords_found"`
	SEOScore       int      `json:"seo_score"`
	KeywordPoints  int      `json:"keyword_points"`
	KeywordsInLead bool     `json:"keywords_in_lead"`
}

// DescriptionDetails holds description sub-metrics
type DescriptionDetails struct {
	WordCount          int            `json:"word_count"`
	CharacterCount     int            `json:"character_count"`
	HashtagCount       int            `json:"hashtag_count"`
	LeadKeywordDensity map[string]int `json:"lead_keyword_density"`
	LeadKeywordHits    int            `json:"lead_keyword_hits"`
	HasLinks           bool           `json:"has_links"`
	HasStructure       bool           `json:"has_structure"`
}

// TagDetails holds tag sub-metrics
type TagDetails struct {
	TagCount        int      `json:"tag_count"`
	AverageLength   float64  `json:"average_length"`
	KeywordCoverage string   `json:"keyword_coverage"` // "covered/total"
	MissingKeywords []string `json:"missing_keywords,omitempty"`
	RelevantTags    int      `json:"relevant_tags"`
	RelevancePoints float64  `json:"relevance_points"`
}

// ThumbnailDetails holds the thumbnail reference that was reviewed
type ThumbnailDetails struct {
	Ref string `json:"ref,omitempty"`
}
