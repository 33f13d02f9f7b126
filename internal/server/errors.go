package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/seo-auditor/internal/types"
)

// ErrHistoryDisabled indicates the server runs without an audit store
var ErrHistoryDisabled = errors.New("audit history is not configured")

// ErrAuditNotFound indicates a stored audit was not found
type ErrAuditNotFound struct {
	ID string
}

func (e *ErrAuditNotFound) Error() string {
	return fmt.Sprintf("audit not found: %s", e.ID)
}

// ErrRequestTooLarge indicates a request body or batch exceeded its limit
type ErrRequestTooLarge struct {
	Limit int64
}

func (e *ErrRequestTooLarge) Error() string {
	return fmt.Sprintf("request exceeds limit of %d", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *types.ValidationError
		argumentErr   *types.InvalidArgumentError
		notFoundErr   *ErrAuditNotFound
		tooLargeErr   *ErrRequestTooLarge
		maxBytesErr   *http.MaxBytesError
	)
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &validationErr), errors.As(err, &argumentErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &tooLargeErr), errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrHistoryDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
