package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListTrainingContent returns the training catalog.
func (h *Handler) ListTrainingContent(w http.ResponseWriter, r *http.Request) {
	items, err := h.training.ListContent(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// ListTrainingProgress returns the caller's completed training items.
func (h *Handler) ListTrainingProgress(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	progress, err := h.training.ListProgress(r.Context(), p.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, progress)
}

// CompleteTraining records the caller's completion of one training item.
func (h *Handler) CompleteTraining(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	if err := h.training.MarkCompleted(r.Context(), p.ID, chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
