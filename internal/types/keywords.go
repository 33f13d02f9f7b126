package types

import "strings"

// Competition is the estimated competition level of a search query
type Competition string

// Competition levels
const (
	CompetitionLow    Competition = "Low"
	CompetitionMedium Competition = "Medium"
	CompetitionHigh   Competition = "High"
)

// NormalizeCompetition maps a level to its canonical spelling, ignoring case.
// Unrecognized levels count as High.
func NormalizeCompetition(c Competition) Competition {
	switch strings.ToLower(strings.TrimSpace(string(c))) {
	case "low":
		return CompetitionLow
	case "medium":
		return CompetitionMedium
	default:
		return CompetitionHigh
	}
}

// CompetitionHint records the competition level measured for a base query.
// Hints are ordered; the first hint whose query occurs in a term wins.
type CompetitionHint struct {
	Query       string      `json:"query"`
	Competition Competition `json:"competition"`
}

// RankedKeyword is a candidate term scored by estimated SEO value
type RankedKeyword struct {
	Keyword     string      `json:"keyword"`
	Score       float64     `json:"score"`
	Length      int         `json:"length"`
	Competition Competition `json:"competition"`
	Relevance   int         `json:"relevance"`
}

// KeywordResearch is the output of a keyword research run
type KeywordResearch struct {
	Niche           string            `json:"niche,omitempty"`
	Seeds           []string          `json:"seeds"`
	Hints           []CompetitionHint `json:"hints"`
	TotalCandidates int               `json:"total_candidates"`
	Ranked          []RankedKeyword   `json:"ranked"`
	Recommendations []string          `json:"recommendations"`
}
