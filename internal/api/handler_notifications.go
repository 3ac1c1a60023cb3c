package api

import (
	"net/http"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// ListNotifications returns the caller's unread notifications, or all of
// them with include_read=true.
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	includeRead := r.URL.Query().Get("include_read") == "true"

	notifications, err := h.notifications.ListForUser(r.Context(), p.ID, includeRead)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

type markReadRequest struct {
	IDs []string `json:"ids"`
}

// MarkNotificationsRead marks a batch of notifications read.
func (h *Handler) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	var req markReadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if len(req.IDs) == 0 {
		respondDomainError(w, domain.ErrValidation("Missing ids"))
		return
	}

	updated, err := h.notifications.MarkRead(r.Context(), req.IDs)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
