package api

import (
	"net/http"
	"time"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// ListFollowUps returns the caller's follow-ups. due=today narrows to the
// current day's window, due=overdue to pending tasks past their due date,
// and all=true includes completed ones.
func (h *Handler) ListFollowUps(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	q := r.URL.Query()

	var (
		followUps []domain.FollowUp
		err       error
	)
	switch q.Get("due") {
	case "today":
		from, to := dayBounds(time.Now().UTC())
		followUps, err = h.followUps.ListDueBetween(r.Context(), p.ID, from, to)
	case "overdue":
		followUps, err = h.followUps.ListOverdue(r.Context(), p.ID, time.Now().UTC())
	default:
		followUps, err = h.followUps.ListByAssignee(r.Context(), p.ID, q.Get("all") == "true")
	}
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, followUps)
}

// CreateFollowUp records a new follow-up task, assigned to the caller
// unless the payload names someone else.
func (h *Handler) CreateFollowUp(w http.ResponseWriter, r *http.Request) {
	var followUp domain.FollowUp
	if err := decodeJSON(r, &followUp); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if followUp.ProspectID == "" {
		respondDomainError(w, domain.ErrValidation("Missing prospect_id"))
		return
	}
	if followUp.AssignedTo == "" {
		followUp.AssignedTo = principal(r).ID
	}

	created, err := h.followUps.Create(r.Context(), &followUp)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

type completeFollowUpsRequest struct {
	IDs   []string `json:"ids"`
	Notes string   `json:"notes"`
}

// CompleteFollowUps marks a batch of follow-ups completed in one call.
func (h *Handler) CompleteFollowUps(w http.ResponseWriter, r *http.Request) {
	var req completeFollowUpsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if len(req.IDs) == 0 {
		respondDomainError(w, domain.ErrValidation("Missing ids"))
		return
	}

	completed, err := h.followUps.MarkCompleted(r.Context(), req.IDs, req.Notes)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, completed)
}

// dayBounds returns the UTC start and end of the day containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
