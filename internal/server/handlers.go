package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/seo-auditor/internal/batch"
	"github.com/jonathan/seo-auditor/internal/db"
	"github.com/jonathan/seo-auditor/internal/keywords"
	"github.com/jonathan/seo-auditor/internal/types"
)

// Request limits
const (
	maxAuditBody      = 1 << 20
	maxBatchBody      = 16 << 20
	MaxBatchRecords   = 500
	MaxRankCandidates = 5000
	healthPingTimeout = 2 * time.Second
)

// AuditIDHeader carries the ID of a persisted audit
const AuditIDHeader = "X-Audit-ID"

// BatchRequest represents the request body for /audit/batch
type BatchRequest struct {
	Channel string                 `json:"channel,omitempty"`
	Records []types.MetadataRecord `json:"records"`
}

// BatchResponse represents the response for /audit/batch
type BatchResponse struct {
	Results []types.BatchItemResult `json:"results"`
	Summary types.ChannelSummary    `json:"summary"`
}

// RankRequest represents the request body for /keywords/rank
type RankRequest struct {
	Candidates []string                `json:"candidates"`
	Niche      string                  `json:"niche,omitempty"`
	Hints      []types.CompetitionHint `json:"hints,omitempty"`
	Limit      int                     `json:"limit,omitempty"`
}

// RankResponse represents the response for /keywords/rank
type RankResponse struct {
	Niche           string                `json:"niche,omitempty"`
	TotalCandidates int                   `json:"total_candidates"`
	Ranked          []types.RankedKeyword `json:"ranked"`
	Recommendations []string              `json:"recommendations"`
}

// ListAuditsResponse represents the response for /audits
type ListAuditsResponse struct {
	Audits []db.AuditRecord `json:"audits"`
	Count  int              `json:"count"`
}

// decodeJSON reads a size-limited JSON body into v. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return &ErrRequestTooLarge{Limit: limit}
		}
		if errors.Is(err, io.EOF) {
			return &types.ValidationError{Message: "request body is empty"}
		}
		return &types.ValidationError{Message: "invalid request body", Cause: err}
	}
	return nil
}

// handleAudit scores a single metadata record
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	var record types.MetadataRecord
	if err := decodeJSON(w, r, maxAuditBody, &record); err != nil {
		s.errorFromErr(w, err)
		return
	}

	start := time.Now()
	report, err := s.auditor.Audit(record)
	if err != nil {
		s.metrics.ObserveAudit(time.Since(start).Seconds(), 0, err)
		s.errorFromErr(w, err)
		return
	}
	s.metrics.ObserveAudit(time.Since(start).Seconds(), report.OverallScore, nil)

	// A failed save does not fail the audit
	if s.store != nil {
		id, err := s.store.SaveAudit(r.Context(), report)
		if err != nil {
			s.logger.Error("failed to save audit", zap.String("video_id", report.VideoID), zap.Error(err))
		} else {
			w.Header().Set(AuditIDHeader, id.String())
		}
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleAuditBatch audits many records and summarizes them
func (s *Server) handleAuditBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := decodeJSON(w, r, maxBatchBody, &req); err != nil {
		s.errorFromErr(w, err)
		return
	}

	switch {
	case len(req.Records) == 0:
		s.errorFromErr(w, &types.InvalidArgumentError{Argument: "records", Message: "at least one record is required"})
		return
	case len(req.Records) > MaxBatchRecords:
		s.errorFromErr(w, &ErrRequestTooLarge{Limit: MaxBatchRecords})
		return
	}

	results := s.runner.Run(r.Context(), req.Records)
	summary := batch.Summarize(req.Channel, results, s.auditor.Config())

	s.jsonResponse(w, http.StatusOK, BatchResponse{Results: results, Summary: summary})
}

// handleRankKeywords ranks caller-supplied candidate terms
func (s *Server) handleRankKeywords(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := decodeJSON(w, r, maxAuditBody, &req); err != nil {
		s.errorFromErr(w, err)
		return
	}

	// An empty candidate list ranks to an empty result
	switch {
	case len(req.Candidates) > MaxRankCandidates:
		s.errorFromErr(w, &ErrRequestTooLarge{Limit: MaxRankCandidates})
		return
	case req.Limit < 0:
		s.errorFromErr(w, &types.InvalidArgumentError{Argument: "limit", Value: strconv.Itoa(req.Limit), Message: "must be non-negative"})
		return
	}

	policy := s.auditor.Config().Keywords
	ranked := keywords.Rank(req.Candidates, req.Niche, req.Hints, policy)
	s.metrics.KeywordsRanked.Add(float64(len(ranked)))

	resp := RankResponse{
		Niche:           req.Niche,
		TotalCandidates: len(ranked),
		Recommendations: keywords.Recommendations(ranked, policy),
	}
	if req.Limit > 0 && len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}
	resp.Ranked = ranked

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetAudit returns one stored audit
func (s *Server) handleGetAudit(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorFromErr(w, ErrHistoryDisabled)
		return
	}

	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorFromErr(w, &types.InvalidArgumentError{Argument: "audit id", Value: idStr, Message: "must be a UUID"})
		return
	}

	record, err := s.store.GetAudit(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	if record == nil {
		s.errorFromErr(w, &ErrAuditNotFound{ID: idStr})
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleListAudits lists stored audits, newest first
func (s *Server) handleListAudits(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorFromErr(w, ErrHistoryDisabled)
		return
	}

	filter, err := parseAuditFilter(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	records, err := s.store.ListAudits(r.Context(), filter)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	if records == nil {
		records = []db.AuditRecord{}
	}

	s.jsonResponse(w, http.StatusOK, ListAuditsResponse{Audits: records, Count: len(records)})
}

// handleHealth returns server health status, including the audit store when configured
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	if s.store == nil {
		s.jsonResponse(w, http.StatusOK, resp)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		s.logger.Warn("database ping failed", zap.Error(err))
		resp["status"] = "degraded"
		resp["database"] = "unavailable"
		s.jsonResponse(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp["database"] = "ok"
	s.jsonResponse(w, http.StatusOK, resp)
}

// parseAuditFilter reads the /audits query parameters
func parseAuditFilter(r *http.Request) (db.AuditFilter, error) {
	q := r.URL.Query()
	filter := db.AuditFilter{
		VideoID: q.Get("video_id"),
		Niche:   q.Get("niche"),
		Grade:   types.Grade(q.Get("grade")),
	}

	intParam := func(name string) (*int, error) {
		raw := q.Get(name)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, &types.InvalidArgumentError{Argument: name, Value: raw, Message: "must be a non-negative integer"}
		}
		return &v, nil
	}

	var err error
	if filter.MinScore, err = intParam("min_score"); err != nil {
		return filter, err
	}
	if filter.MaxScore, err = intParam("max_score"); err != nil {
		return filter, err
	}

	limit, err := intParam("limit")
	if err != nil {
		return filter, err
	}
	if limit != nil {
		filter.Limit = *limit
	}
	offset, err := intParam("offset")
	if err != nil {
		return filter, err
	}
	if offset != nil {
		filter.Offset = *offset
	}

	if raw := q.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, &types.InvalidArgumentError{Argument: "since", Value: raw, Message: "must be an RFC 3339 timestamp"}
		}
		filter.Since = &since
	}

	return filter, nil
}
