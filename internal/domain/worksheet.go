package domain

import "time"

// Worksheet is a structured sales document created by a user, optionally
// linked to a prospect.
type Worksheet struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Type       string           `json:"type"`
	ProspectID string           `json:"prospect_id,omitempty"`
	CreatedBy  string           `json:"created_by,omitempty"`
	Status     string           `json:"status,omitempty"`
	CreatedAt  time.Time        `json:"created_at,omitzero"`
	UpdatedAt  *time.Time       `json:"updated_at,omitempty"`
	Prospect   *ProspectSummary `json:"prospects,omitempty"` // populated by nested select only
}

// Validate checks the fields required to create a worksheet.
func (w *Worksheet) Validate() error {
	if w.Title == "" || w.Type == "" {
		return ErrValidation("Missing title or type")
	}
	return nil
}
