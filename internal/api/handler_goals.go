package api

import (
	"net/http"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// ListGoals returns every accountability goal. The route runs under the
// service-role key, resolved per request; when credentials are missing the
// response names the absent variables and no backend call is attempted.
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	admin, err := h.adminRepos()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	goals, err := admin.Goals.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, goals)
}

// CreateGoal inserts a new accountability goal.
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	admin, err := h.adminRepos()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	var goal domain.Goal
	if err := decodeJSON(r, &goal); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := admin.Goals.Create(r.Context(), &goal)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}
