package domain

import "time"

// Prospect is a qualified lead with an assigned owner.
type Prospect struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email,omitempty"`
	Company       string     `json:"company,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Status        string     `json:"status,omitempty"`
	AssignedTo    string     `json:"assigned_to,omitempty"`
	NeedsFollowup bool       `json:"needs_followup,omitempty"`
	FollowupDate  *time.Time `json:"followup_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at,omitzero"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ProspectSummary is the subset of prospect fields embedded in nested
// selects (e.g. worksheets with their prospect).
type ProspectSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Company string `json:"company,omitempty"`
}
