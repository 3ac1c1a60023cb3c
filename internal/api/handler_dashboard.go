package api

import (
	"net/http"
	"strings"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// Dashboard aggregates the caller's profile and per-module counts. It
// always answers 200: individual lookups that fail settle to their zero
// values rather than sinking the whole page.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	data := h.dashboard.GetDashboardData(r.Context(), p.ID)
	respondJSON(w, http.StatusOK, data)
}

// GetProfile returns the caller's user record.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	user, err := h.users.Profile(r.Context(), p.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// EnsureProfile returns the caller's user record, provisioning a default
// one on first contact. Safe to call repeatedly.
func (h *Handler) EnsureProfile(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	user, err := h.users.EnsureRecord(r.Context(), p)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "profile": user})
}

// UpdateProfile applies partial updates to the caller's own record.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	p := principal(r)
	user, err := h.users.UpdateProfile(r.Context(), p.ID, fields)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Team lists active users for managers. A role query param narrows the
// list instead.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	requester, err := h.users.Profile(r.Context(), p.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if role := strings.TrimSpace(r.URL.Query().Get("role")); role != "" {
		if !requester.IsManager() {
			respondDomainError(w, domain.ErrAccessDenied("manager role required"))
			return
		}
		users, err := h.users.ListByRole(r.Context(), role)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, users)
		return
	}

	users, err := h.users.Team(r.Context(), requester)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}
