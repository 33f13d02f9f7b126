// Package types provides type definitions for structured data used throughout the seo-auditor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// recordValidator is shared; validator.Validate caches struct metadata and is safe for concurrent use.
var recordValidator = validator.New()

// MetadataRecord is the published metadata of a single video as fetched by a source collaborator.
// The audit engine only reads it.
type MetadataRecord struct {
	VideoID      string   `json:"video_id,omitempty" validate:"max=64"`
	Title        string   `json:"title" validate:"max=1000"`
	Description  string   `json:"description" validate:"max=50000"`
	Tags         []string `json:"tags" validate:"max=500,dive,max=100"`
	ThumbnailRef *string  `json:"thumbnail_ref,omitempty" validate:"omitempty,max=2048"`
	Niche        string   `json:"niche,omitempty" validate:"max=200"`
}

// Validate checks the record's structural limits. Empty fields are valid:
// missing content is scored, not rejected.
func (r *MetadataRecord) Validate() error {
	if err := recordValidator.Struct(r); err != nil {
		return &ValidationError{Message: "invalid metadata record", Cause: err}
	}
	return nil
}

// Thumbnail returns the thumbnail reference or "" when absent.
func (r *MetadataRecord) Thumbnail() string {
	if r.ThumbnailRef == nil {
		return ""
	}
	return *r.ThumbnailRef
}

// StringPtr returns a pointer to s, handy for optional fields.
func StringPtr(s string) *string {
	return &s
}
