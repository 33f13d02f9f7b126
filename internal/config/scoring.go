package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/seo-auditor/internal/types"
	"gopkg.in/yaml.v3"
)

// Range is an inclusive integer interval
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether v lies in [Min, Max]
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// ContainsFloat reports whether v lies in [Min, Max]
func (r Range) ContainsFloat(v float64) bool {
	return v >= float64(r.Min) && v <= float64(r.Max)
}

// StatusThresholds are the lower bounds of each status band
type StatusThresholds struct {
	Excellent        int `json:"excellent" yaml:"excellent"`
	Good             int `json:"good" yaml:"good"`
	NeedsImprovement int `json:"needs_improvement" yaml:"needs_improvement"`
}

// GradeBand maps a minimum overall score to a letter grade
type GradeBand struct {
	Min   int         `json:"min" yaml:"min"`
	Grade types.Grade `json:"grade" yaml:"grade"`
}

// TitlePolicy holds the title scoring constants
type TitlePolicy struct {
	Optimal             Range `json:"optimal" yaml:"optimal"`
	Acceptable          Range `json:"acceptable" yaml:"acceptable"`
	OptimalPoints       int   `json:"optimal_points" yaml:"optimal_points"`
	AcceptablePoints    int   `json:"acceptable_points" yaml:"acceptable_points"`
	KeywordScoreCap     int   `json:"keyword_score_cap" yaml:"keyword_score_cap"`
	MultiKeywordPoints  int   `json:"multi_keyword_points" yaml:"multi_keyword_points"`
	SingleKeywordPoints int   `json:"single_keyword_points" yaml:"single_keyword_points"`
	LeadWindow          int   `json:"lead_window" yaml:"lead_window"`
	LeadPoints          int   `json:"lead_points" yaml:"lead_points"`
}

// TitleAnalysisPolicy holds the constants of the keyword analysis applied to a single title
type TitleAnalysisPolicy struct {
	OptimalPoints         int   `json:"optimal_points" yaml:"optimal_points"`
	AcceptablePoints      int   `json:"acceptable_points" yaml:"acceptable_points"`
	BasePoints            int   `json:"base_points" yaml:"base_points"`
	PointsPerKeyword      int   `json:"points_per_keyword" yaml:"points_per_keyword"`
	WordsOptimal          Range `json:"words_optimal" yaml:"words_optimal"`
	WordsAcceptable       Range `json:"words_acceptable" yaml:"words_acceptable"`
	WordsOptimalPoints    int   `json:"words_optimal_points" yaml:"words_optimal_points"`
	WordsAcceptablePoints int   `json:"words_acceptable_points" yaml:"words_acceptable_points"`
}

// DescriptionPolicy holds the description scoring constants
type DescriptionPolicy struct {
	WordsFull          int      `json:"words_full" yaml:"words_full"`
	WordsPartial       int      `json:"words_partial" yaml:"words_partial"`
	WordsMinimum       int      `json:"words_minimum" yaml:"words_minimum"`
	CharsFull          int      `json:"chars_full" yaml:"chars_full"`
	CharsPartial       int      `json:"chars_partial" yaml:"chars_partial"`
	HashtagsOptimal    Range    `json:"hashtags_optimal" yaml:"hashtags_optimal"`
	HashtagsMinimum    int      `json:"hashtags_minimum" yaml:"hashtags_minimum"`
	LeadWindow         int      `json:"lead_window" yaml:"lead_window"`
	LeadHitsFull       int      `json:"lead_hits_full" yaml:"lead_hits_full"`
	LeadHitsPartial    int      `json:"lead_hits_partial" yaml:"lead_hits_partial"`
	LinkMarkers        []string `json:"link_markers" yaml:"link_markers"`
	StructureMarkers   []string `json:"structure_markers" yaml:"structure_markers"`
	WordsFullPoints    int      `json:"words_full_points" yaml:"words_full_points"`
	WordsPartialPoints int      `json:"words_partial_points" yaml:"words_partial_points"`
	WordsMinimumPoints int      `json:"words_minimum_points" yaml:"words_minimum_points"`
	CharsFullPoints    int      `json:"chars_full_points" yaml:"chars_full_points"`
	CharsPartialPoints int      `json:"chars_partial_points" yaml:"chars_partial_points"`
	HashtagFullPoints  int      `json:"hashtag_full_points" yaml:"hashtag_full_points"`
	HashtagNearPoints  int      `json:"hashtag_near_points" yaml:"hashtag_near_points"`
	LeadFullPoints     int      `json:"lead_full_points" yaml:"lead_full_points"`
	LeadPartialPoints  int      `json:"lead_partial_points" yaml:"lead_partial_points"`
	LinkPoints         int      `json:"link_points" yaml:"link_points"`
	StructurePoints    int      `json:"structure_points" yaml:"structure_points"`
}

// TagPolicy holds the tag scoring constants
type TagPolicy struct {
	CountOptimal           Range `json:"count_optimal" yaml:"count_optimal"`
	CountLow               Range `json:"count_low" yaml:"count_low"`
	CountHigh              Range `json:"count_high" yaml:"count_high"`
	CountOptimalPoints     int   `json:"count_optimal_points" yaml:"count_optimal_points"`
	CountNearPoints        int   `json:"count_near_points" yaml:"count_near_points"`
	CoveragePoints         int   `json:"coverage_points" yaml:"coverage_points"`
	LengthOptimal          Range `json:"length_optimal" yaml:"length_optimal"`
	LengthAcceptable       Range `json:"length_acceptable" yaml:"length_acceptable"`
	LengthOptimalPoints    int   `json:"length_optimal_points" yaml:"length_optimal_points"`
	LengthAcceptablePoints int   `json:"length_acceptable_points" yaml:"length_acceptable_points"`
	RelevancePoints        int   `json:"relevance_points" yaml:"relevance_points"`
	RelevanceAdviceBelow   int   `json:"relevance_advice_below" yaml:"relevance_advice_below"`
}

// ThumbnailPolicy holds the thumbnail stub constants
type ThumbnailPolicy struct {
	Baseline  int      `json:"baseline" yaml:"baseline"`
	Checklist []string `json:"checklist" yaml:"checklist"`
}

// KeywordPolicy holds the keyword ranking constants
type KeywordPolicy struct {
	LengthOptimal          Range                     `json:"length_optimal" yaml:"length_optimal"`
	LengthAcceptable       Range                     `json:"length_acceptable" yaml:"length_acceptable"`
	LengthOptimalPoints    int                       `json:"length_optimal_points" yaml:"length_optimal_points"`
	LengthAcceptablePoints int                       `json:"length_acceptable_points" yaml:"length_acceptable_points"`
	RelevancePoints        int                       `json:"relevance_points" yaml:"relevance_points"`
	CompetitionPoints      map[types.Competition]int `json:"competition_points" yaml:"competition_points"`
	FallbackKeywords       []string                  `json:"fallback_keywords" yaml:"fallback_keywords"`
	StopWords              []string                  `json:"stop_words" yaml:"stop_words"`
	LongTailLength         int                       `json:"long_tail_length" yaml:"long_tail_length"`
}

// RecommendationPolicy holds the thresholds of the recommendation engine and priority selector
type RecommendationPolicy struct {
	FacetThreshold     int           `json:"facet_threshold" yaml:"facet_threshold"`
	OverallThreshold   int           `json:"overall_threshold" yaml:"overall_threshold"`
	PriorityThreshold  int           `json:"priority_threshold" yaml:"priority_threshold"`
	MaxPriorityActions int           `json:"max_priority_actions" yaml:"max_priority_actions"`
	HighPriorityFacets []types.Facet `json:"high_priority_facets" yaml:"high_priority_facets"`
}

// ScoringConfig is the single named table of scoring policy constants.
// It is passed explicitly to every scorer; nothing reads it from global state.
type ScoringConfig struct {
	Weights         map[types.Facet]float64 `json:"weights" yaml:"weights"`
	GainCaps        map[types.Facet]int     `json:"gain_caps" yaml:"gain_caps"`
	Status          StatusThresholds        `json:"status" yaml:"status"`
	Grades          []GradeBand             `json:"grades" yaml:"grades"`
	Title           TitlePolicy             `json:"title" yaml:"title"`
	TitleAnalysis   TitleAnalysisPolicy     `json:"title_analysis" yaml:"title_analysis"`
	Description     DescriptionPolicy       `json:"description" yaml:"description"`
	Tags            TagPolicy               `json:"tags" yaml:"tags"`
	Thumbnail       ThumbnailPolicy         `json:"thumbnail" yaml:"thumbnail"`
	Keywords        KeywordPolicy           `json:"keywords" yaml:"keywords"`
	Recommendations RecommendationPolicy    `json:"recommendations" yaml:"recommendations"`
}

// DefaultScoringConfig returns the standard policy table. Each call returns fresh maps and slices.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights: map[types.Facet]float64{
			types.FacetTitle:       0.35,
			types.FacetDescription: 0.30,
			types.FacetTags:        0.25,
			types.FacetThumbnail:   0.10,
		},
		GainCaps: map[types.Facet]int{
			types.FacetTitle:       30,
			types.FacetDescription: 25,
			types.FacetTags:        20,
			types.FacetThumbnail:   15,
		},
		Status: StatusThresholds{Excellent: 80, Good: 60, NeedsImprovement: 40},
		Grades: []GradeBand{
			{Min: 90, Grade: "A+"},
			{Min: 80, Grade: "A"},
			{Min: 70, Grade: "B+"},
			{Min: 60, Grade: "B"},
			{Min: 50, Grade: "C+"},
			{Min: 40, Grade: "C"},
			{Min: 0, Grade: "D"},
		},
		Title: TitlePolicy{
			Optimal:             Range{Min: 40, Max: 60},
			Acceptable:          Range{Min: 30, Max: 70},
			OptimalPoints:       30,
			AcceptablePoints:    20,
			KeywordScoreCap:     40,
			MultiKeywordPoints:  20,
			SingleKeywordPoints: 10,
			LeadWindow:          30,
			LeadPoints:          10,
		},
		TitleAnalysis: TitleAnalysisPolicy{
			OptimalPoints:         30,
			AcceptablePoints:      20,
			BasePoints:            10,
			PointsPerKeyword:      10,
			WordsOptimal:          Range{Min: 5, Max: 8},
			WordsAcceptable:       Range{Min: 4, Max: 10},
			WordsOptimalPoints:    20,
			WordsAcceptablePoints: 10,
		},
		Description: DescriptionPolicy{
			WordsFull:          200,
			WordsPartial:       150,
			WordsMinimum:       100,
			CharsFull:          1000,
			CharsPartial:       500,
			HashtagsOptimal:    Range{Min: 10, Max: 15},
			HashtagsMinimum:    5,
			LeadWindow:         125,
			LeadHitsFull:       3,
			LeadHitsPartial:    2,
			LinkMarkers:        []string{"http", "youtube.com"},
			StructureMarkers:   []string{"━━━", "---", "###", "**"},
			WordsFullPoints:    25,
			WordsPartialPoints: 15,
			WordsMinimumPoints: 10,
			CharsFullPoints:    20,
			CharsPartialPoints: 10,
			HashtagFullPoints:  15,
			HashtagNearPoints:  10,
			LeadFullPoints:     20,
			LeadPartialPoints:  10,
			LinkPoints:         10,
			StructurePoints:    10,
		},
		Tags: TagPolicy{
			CountOptimal:           Range{Min: 20, Max: 30},
			CountLow:               Range{Min: 15, Max: 19},
			CountHigh:              Range{Min: 31, Max: 40},
			CountOptimalPoints:     30,
			CountNearPoints:        20,
			CoveragePoints:         30,
			LengthOptimal:          Range{Min: 10, Max: 20},
			LengthAcceptable:       Range{Min: 8, Max: 25},
			LengthOptimalPoints:    20,
			LengthAcceptablePoints: 10,
			RelevancePoints:        20,
			RelevanceAdviceBelow:   15,
		},
		Thumbnail: ThumbnailPolicy{
			Baseline: 50,
			Checklist: []string{
				"Use high contrast colors for visibility",
				"Include text overlay with main keywords",
				"Show faces or recognizable elements",
				"Use bright, eye-catching colors",
				"Ensure thumbnail is clear even at small sizes",
				"Make thumbnail relevant to video title",
			},
		},
		Keywords: KeywordPolicy{
			LengthOptimal:          Range{Min: 40, Max: 60},
			LengthAcceptable:       Range{Min: 30, Max: 70},
			LengthOptimalPoints:    10,
			LengthAcceptablePoints: 5,
			RelevancePoints:        5,
			CompetitionPoints: map[types.Competition]int{
				types.CompetitionLow:    15,
				types.CompetitionMedium: 10,
				types.CompetitionHigh:   5,
			},
			FallbackKeywords: []string{"music", "song", "cover", "video"},
			StopWords: []string{
				"a", "an", "and", "the", "of", "in", "on", "for", "to", "with",
				"from", "by", "at", "or", "is", "this", "that", "&", "-",
			},
			LongTailLength: 50,
		},
		Recommendations: RecommendationPolicy{
			FacetThreshold:     60,
			OverallThreshold:   60,
			PriorityThreshold:  80,
			MaxPriorityActions: 3,
			HighPriorityFacets: []types.Facet{types.FacetTitle, types.FacetDescription},
		},
	}
}

// Validate checks the internal consistency of the policy table
func (c *ScoringConfig) Validate() error {
	sum := 0.0
	for _, facet := range types.Facets {
		w, ok := c.Weights[facet]
		if !ok {
			return &types.InvalidArgumentError{Argument: "weights", Value: string(facet), Message: "missing facet weight"}
		}
		if w < 0 {
			return &types.InvalidArgumentError{Argument: "weights", Value: string(facet), Message: "weight must be non-negative"}
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return &types.InvalidArgumentError{Argument: "weights", Value: fmt.Sprintf("%.4f", sum), Message: "weights must sum to 1.0"}
	}

	for _, facet := range types.Facets {
		if c.GainCaps[facet] < 0 {
			return &types.InvalidArgumentError{Argument: "gain_caps", Value: string(facet), Message: "gain cap must be non-negative"}
		}
	}

	s := c.Status
	if !(s.Excellent > s.Good && s.Good > s.NeedsImprovement && s.NeedsImprovement > 0) {
		return &types.InvalidArgumentError{Argument: "status", Message: "thresholds must be strictly descending and positive"}
	}

	if len(c.Grades) == 0 {
		return &types.InvalidArgumentError{Argument: "grades", Message: "at least one grade band is required"}
	}
	for i := 1; i < len(c.Grades); i++ {
		if c.Grades[i].Min >= c.Grades[i-1].Min {
			return &types.InvalidArgumentError{Argument: "grades", Message: "grade bands must be ordered by descending minimum"}
		}
	}

	if c.Recommendations.MaxPriorityActions < 0 {
		return &types.InvalidArgumentError{Argument: "max_priority_actions", Message: "must be non-negative"}
	}

	return nil
}

// IsHighPriority reports whether recommendations for the facet are high priority
func (c *ScoringConfig) IsHighPriority(facet types.Facet) bool {
	for _, f := range c.Recommendations.HighPriorityFacets {
		if f == facet {
			return true
		}
	}
	return false
}

// LoadScoringConfig overlays a YAML or JSON policy file on DefaultScoringConfig.
// Fields absent from the file keep their default values.
func LoadScoringConfig(path string) (*ScoringConfig, error) {
	cfg := DefaultScoringConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoring policy %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse scoring policy JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse scoring policy YAML: %w", err)
		}
	default:
		return nil, &types.InvalidArgumentError{Argument: "policy file", Value: path, Message: "expected .json, .yaml or .yml"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
