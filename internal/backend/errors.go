// Package backend implements the client for the hosted Supabase backend:
// a PostgREST query client for the data layer and a GoTrue client for
// authentication. It performs no retries of its own except where noted;
// retry policy belongs to callers.
package backend

import (
	"errors"
	"fmt"
)

// Error is a failed backend call. Status is the upstream HTTP status, or 0
// for transport-level failures.
type Error struct {
	Status  int
	Code    string // backend error code when provided (e.g. "over_request_rate_limit")
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend: %s", e.Message)
	}
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
}

// IsNotFound reports whether err is a backend error for a missing row.
// PostgREST answers 406 when a single-object request matches no rows.
func IsNotFound(err error) bool {
	var be *Error
	if !errors.As(err, &be) {
		return false
	}
	return be.Status == 404 || be.Status == 406
}

// IsRateLimited reports whether err is a backend rate-limit rejection.
func IsRateLimited(err error) bool {
	var be *Error
	if !errors.As(err, &be) {
		return false
	}
	return be.Status == 429 || be.Code == "over_request_rate_limit"
}
