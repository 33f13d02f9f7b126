package youtube

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// SourceError represents a failed call to the video platform. Calls are not retried.
type SourceError struct {
	Operation string // e.g. "videos.list"
	Target    string // video ID, handle or query
	NotFound  bool
	Cause     error
}

func (e *SourceError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("source error: %s %s: not found", e.Operation, e.Target)
	}
	if e.Cause != nil {
		return fmt.Sprintf("source error: %s %s: %v", e.Operation, e.Target, e.Cause)
	}
	return fmt.Sprintf("source error: %s %s", e.Operation, e.Target)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is a SourceError for a missing video or channel.
func IsNotFound(err error) bool {
	var srcErr *SourceError
	return errors.As(err, &srcErr) && srcErr.NotFound
}

func sourceError(op, target string, err error) *SourceError {
	var apiErr *googleapi.Error
	notFound := errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
	return &SourceError{Operation: op, Target: target, NotFound: notFound, Cause: err}
}

func notFound(op, target string) *SourceError {
	return &SourceError{Operation: op, Target: target, NotFound: true}
}
