package domain

import "time"

// TrainingItem is a piece of training content. A user's incomplete count is
// the number of items without a matching progress row for that user.
type TrainingItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	ContentURL  string    `json:"content_url,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// TrainingProgress records that a user completed a training item.
type TrainingProgress struct {
	UserID      string     `json:"user_id"`
	TrainingID  string     `json:"training_id"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
