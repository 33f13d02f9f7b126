package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/seo-auditor/internal/types"
)

// -----------------------------------------------------------------------------
// Channel Summary Methods
// -----------------------------------------------------------------------------

// SaveChannelSummary stores a channel summary and returns its ID
func (db *DB) SaveChannelSummary(ctx context.Context, summary *types.ChannelSummary) (uuid.UUID, error) {
	if summary == nil {
		return uuid.Nil, &types.InvalidArgumentError{Argument: "summary", Message: "cannot be nil"}
	}

	content, err := json.Marshal(summary)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal channel summary: %w", err)
	}

	query, args, err := psql.Insert("channel_summaries").
		Columns("id", "channel", "average_score", "average_grade", "summary").
		Values(uuid.New(), summary.Channel, summary.AverageScore, string(summary.AverageGrade), content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build summary insert: %w", err)
	}

	var id uuid.UUID
	if err := db.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save channel summary: %w", err)
	}
	return id, nil
}

// LatestChannelSummaries returns the most recent summaries of a channel, newest first
func (db *DB) LatestChannelSummaries(ctx context.Context, channel string, limit int) ([]SummaryRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, channel, summary, created_at FROM channel_summaries
		 WHERE channel = $1 ORDER BY created_at DESC LIMIT $2`,
		channel, min(limit, MaxListLimit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel summaries: %w", err)
	}
	defer rows.Close()

	records := make([]SummaryRecord, 0)
	for rows.Next() {
		var rec SummaryRecord
		var content []byte
		if err := rows.Scan(&rec.ID, &rec.Channel, &content, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan channel summary: %w", err)
		}
		var summary types.ChannelSummary
		if err := json.Unmarshal(content, &summary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal channel summary: %w", err)
		}
		rec.Summary = &summary
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list channel summaries: %w", err)
	}
	return records, nil
}
