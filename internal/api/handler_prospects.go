package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// ListProspects returns the caller's prospects. A status filter narrows to
// one pipeline stage; needs_followup=true narrows to prospects flagged for
// follow-up.
func (h *Handler) ListProspects(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	q := r.URL.Query()

	var (
		prospects []domain.Prospect
		err       error
	)
	switch {
	case q.Get("status") != "":
		prospects, err = h.prospects.ListByStatus(r.Context(), q.Get("status"))
	case q.Get("needs_followup") == "true":
		prospects, err = h.prospects.ListNeedingFollowup(r.Context(), p.ID)
	default:
		prospects, err = h.prospects.GetUserProspects(r.Context(), p.ID)
	}
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, prospects)
}

// SearchProspects matches the q term against name, email, and company.
func (h *Handler) SearchProspects(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		respondDomainError(w, domain.ErrValidation("Missing search term"))
		return
	}

	prospects, err := h.prospects.Search(r.Context(), term)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, prospects)
}

// CreateProspect inserts a new prospect, owned by the caller unless the
// payload names someone else.
func (h *Handler) CreateProspect(w http.ResponseWriter, r *http.Request) {
	var prospect domain.Prospect
	if err := decodeJSON(r, &prospect); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if prospect.Name == "" {
		respondDomainError(w, domain.ErrValidation("Missing name"))
		return
	}
	if prospect.AssignedTo == "" {
		prospect.AssignedTo = principal(r).ID
	}

	created, err := h.prospects.Create(r.Context(), &prospect)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetProspect fetches a single prospect by id.
func (h *Handler) GetProspect(w http.ResponseWriter, r *http.Request) {
	prospect, err := h.prospects.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, prospect)
}

// UpdateProspect applies partial updates to a prospect.
func (h *Handler) UpdateProspect(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	prospect, err := h.prospects.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, prospect)
}

// DeleteProspect removes a prospect.
func (h *Handler) DeleteProspect(w http.ResponseWriter, r *http.Request) {
	if err := h.prospects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ListProspectFollowUps returns the follow-ups recorded against one
// prospect.
func (h *Handler) ListProspectFollowUps(w http.ResponseWriter, r *http.Request) {
	followUps, err := h.followUps.ListByProspect(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, followUps)
}
