package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// ListLeads returns the leads assigned to the caller.
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	leads, err := h.leads.ListAssigned(r.Context(), p.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, leads)
}

// CreateLead inserts a new lead, assigned to the caller unless the payload
// names someone else.
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var lead domain.Lead
	if err := decodeJSON(r, &lead); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if lead.Name == "" {
		respondDomainError(w, domain.ErrValidation("Missing name"))
		return
	}
	if lead.AssignedTo == "" {
		lead.AssignedTo = principal(r).ID
	}

	created, err := h.leads.Create(r.Context(), &lead)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetLead fetches a single lead by id.
func (h *Handler) GetLead(w http.ResponseWriter, r *http.Request) {
	lead, err := h.leads.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

// UpdateLead applies partial updates to a lead.
func (h *Handler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	lead, err := h.leads.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

// DeleteLead removes a lead.
func (h *Handler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	if err := h.leads.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
