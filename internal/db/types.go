package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/seo-auditor/internal/types"
)

// Listing limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// AuditRecord is a stored audit report
type AuditRecord struct {
	ID           uuid.UUID          `json:"id"`
	VideoID      string             `json:"video_id"`
	Title        string             `json:"title"`
	Niche        string             `json:"niche"`
	OverallScore int                `json:"overall_score"`
	Grade        types.Grade        `json:"grade"`
	Report       *types.AuditReport `json:"report"`
	CreatedAt    time.Time          `json:"created_at"`
}

// AuditFilter narrows ListAudits. Zero-valued fields do not filter.
type AuditFilter struct {
	VideoID  string
	Niche    string
	Grade    types.Grade
	MinScore *int
	MaxScore *int
	Since    *time.Time
	Limit    int
	Offset   int
}

// SummaryRecord is a stored channel summary
type SummaryRecord struct {
	ID        uuid.UUID             `json:"id"`
	Channel   string                `json:"channel"`
	Summary   *types.ChannelSummary `json:"summary"`
	CreatedAt time.Time             `json:"created_at"`
}
