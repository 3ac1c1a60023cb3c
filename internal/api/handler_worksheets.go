package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jordaneaster/phoenix/internal/domain"
)

const defaultWorksheetPageSize = 50

// ListWorksheets returns worksheets with their linked prospect embedded.
// Like the goals routes it runs under the per-request service-role key.
func (h *Handler) ListWorksheets(w http.ResponseWriter, r *http.Request) {
	admin, err := h.adminRepos()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	limit := queryInt(r, "limit", defaultWorksheetPageSize)
	offset := queryInt(r, "offset", 0)

	sheets, err := admin.Worksheets.ListWithProspects(r.Context(), limit, offset)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sheets)
}

// CreateWorksheet inserts a new worksheet after validating its required
// fields.
func (h *Handler) CreateWorksheet(w http.ResponseWriter, r *http.Request) {
	admin, err := h.adminRepos()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	var sheet domain.Worksheet
	if err := decodeJSON(r, &sheet); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := sheet.Validate(); err != nil {
		respondDomainError(w, err)
		return
	}

	created, err := admin.Worksheets.Create(r.Context(), &sheet)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetWorksheet fetches a single worksheet by id.
func (h *Handler) GetWorksheet(w http.ResponseWriter, r *http.Request) {
	admin, err := h.adminRepos()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	sheet, err := admin.Worksheets.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sheet)
}

// UpdateWorksheet applies partial updates to a worksheet.
func (h *Handler) UpdateWorksheet(w http.ResponseWriter, r *http.Request) {
	admin, err := h.adminRepos()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	sheet, err := admin.Worksheets.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sheet)
}

// DeleteWorksheet removes a worksheet.
func (h *Handler) DeleteWorksheet(w http.ResponseWriter, r *http.Request) {
	admin, err := h.adminRepos()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if err := admin.Worksheets.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// queryInt parses an integer query param, falling back to def on absence
// or garbage.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
