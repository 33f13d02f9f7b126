package types

// BatchItemResult is the outcome of auditing one record in a batch.
// Exactly one of Report and Error is set.
type BatchItemResult struct {
	ID     string       `json:"id"`
	Report *AuditReport `json:"report,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// Failed reports whether the item failed
func (r BatchItemResult) Failed() bool {
	return r.Error != ""
}

// ScoreDistribution is the score-band histogram of a channel
type ScoreDistribution struct {
	Excellent int `json:"excellent_90_100"`
	Good      int `json:"good_70_89"`
	Fair      int `json:"fair_50_69"`
	Poor      int `json:"poor_below_50"`
}

// Performer is a compact view of one audited video
type Performer struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	OverallScore int    `json:"overall_score"`
	Grade        Grade  `json:"grade"`
}

// ItemFailure records a batch item that could not be audited
type ItemFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// ChannelSummary aggregates the audits of many videos of one channel
type ChannelSummary struct {
	Channel          string            `json:"channel,omitempty"`
	TotalAudited     int               `json:"total_videos_audited"`
	Successful       int               `json:"successful_audits"`
	Failed           int               `json:"failed_audits"`
	AverageScore     float64           `json:"average_score"`
	AverageGrade     Grade             `json:"average_grade"`
	Distribution     ScoreDistribution `json:"score_distribution"`
	TopPerformers    []Performer       `json:"top_performers"`
	BottomPerformers []Performer       `json:"bottom_performers"`
	Failures         []ItemFailure     `json:"failures"`
}
