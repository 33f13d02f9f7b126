package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/seo-auditor/internal/types"
)

// -----------------------------------------------------------------------------
// Audit Methods
// -----------------------------------------------------------------------------

const auditColumns = "id, video_id, title, niche, overall_score, grade, report, created_at"

// SaveAudit stores an audit report and returns its ID
func (db *DB) SaveAudit(ctx context.Context, report *types.AuditReport) (uuid.UUID, error) {
	query, args, err := insertAuditQuery(uuid.New(), report)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := db.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save audit: %w", err)
	}
	return id, nil
}

// GetAudit retrieves an audit by ID. Returns nil when no audit exists.
func (db *DB) GetAudit(ctx context.Context, id uuid.UUID) (*AuditRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+auditColumns+` FROM audits WHERE id = $1`,
		id,
	)
	rec, err := scanAudit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get audit: %w", err)
	}
	return rec, nil
}

// ListAudits returns stored audits matching the filter, newest first
func (db *DB) ListAudits(ctx context.Context, filter AuditFilter) ([]AuditRecord, error) {
	query, args, err := listAuditsQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audits: %w", err)
	}
	defer rows.Close()

	records := make([]AuditRecord, 0)
	for rows.Next() {
		rec, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list audits: %w", err)
	}
	return records, nil
}

// DeleteAudit removes an audit by ID
func (db *DB) DeleteAudit(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM audits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete audit: %w", err)
	}
	return nil
}

func insertAuditQuery(id uuid.UUID, report *types.AuditReport) (string, []any, error) {
	if report == nil {
		return "", nil, &types.InvalidArgumentError{Argument: "report", Message: "cannot be nil"}
	}

	content, err := json.Marshal(report)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal audit report: %w", err)
	}

	query, args, err := psql.Insert("audits").
		Columns("id", "video_id", "title", "niche", "overall_score", "grade", "report").
		Values(id, report.VideoID, report.Title, report.Niche, report.OverallScore, string(report.Grade), content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build audit insert: %w", err)
	}
	return query, args, nil
}

func listAuditsQuery(filter AuditFilter) (string, []any, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return "", nil, &types.InvalidArgumentError{Argument: "audit filter", Message: "limit and offset must be non-negative"}
	}

	limit := filter.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	q := psql.Select(auditColumns).From("audits")
	if filter.VideoID != "" {
		q = q.Where(sq.Eq{"video_id": filter.VideoID})
	}
	if filter.Niche != "" {
		q = q.Where(sq.ILike{"niche": "%" + filter.Niche + "%"})
	}
	if filter.Grade != "" {
		q = q.Where(sq.Eq{"grade": string(filter.Grade)})
	}
	if filter.MinScore != nil {
		q = q.Where(sq.GtOrEq{"overall_score": *filter.MinScore})
	}
	if filter.MaxScore != nil {
		q = q.Where(sq.LtOrEq{"overall_score": *filter.MaxScore})
	}
	if filter.Since != nil {
		q = q.Where(sq.GtOrEq{"created_at": *filter.Since})
	}

	q = q.OrderBy("created_at DESC", "id").Limit(uint64(limit))
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build audit query: %w", err)
	}
	return query, args, nil
}

func scanAudit(row pgx.Row) (*AuditRecord, error) {
	var rec AuditRecord
	var grade string
	var content []byte

	if err := row.Scan(&rec.ID, &rec.VideoID, &rec.Title, &rec.Niche, &rec.OverallScore, &grade, &content, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.Grade = types.Grade(grade)

	var report types.AuditReport
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal audit report: %w", err)
	}
	rec.Report = &report

	return &rec, nil
}
