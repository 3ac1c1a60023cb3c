package api

import (
	"errors"
	"net/http"

	"github.com/jordaneaster/phoenix/internal/backend"
	"github.com/jordaneaster/phoenix/internal/domain"
)

// httpStatusFromError maps domain and backend errors to HTTP status codes.
func httpStatusFromError(err error) int {
	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	var backendErr *backend.Error

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &accessDenied):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &backendErr):
		if backendErr.Status >= 400 && backendErr.Status < 600 {
			return backendErr.Status
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// respondDomainError writes an error response using the domain error mapping.
// Configuration errors carry the list of missing variables alongside the message.
func respondDomainError(w http.ResponseWriter, err error) {
	var confErr *domain.ConfigurationError
	if errors.As(err, &confErr) {
		respondJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   confErr.Message,
			"missing": confErr.Missing,
		})
		return
	}
	respondError(w, httpStatusFromError(err), err.Error())
}
