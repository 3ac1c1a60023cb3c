package domain

import "time"

// FollowUp is a dated task against a prospect, assigned to a user. Pending
// follow-ups are those with Completed == false.
type FollowUp struct {
	ID              string     `json:"id"`
	ProspectID      string     `json:"prospect_id,omitempty"`
	AssignedTo      string     `json:"assigned_to,omitempty"`
	Title           string     `json:"title,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	Completed       bool       `json:"completed"`
	CompletionDate  *time.Time `json:"completion_date,omitempty"`
	CompletionNotes string     `json:"completion_notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at,omitzero"`
}
