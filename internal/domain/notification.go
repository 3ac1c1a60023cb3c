package domain

import "time"

// Notification is an in-app message delivered to a single user.
type Notification struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title,omitempty"`
	Message   string     `json:"message,omitempty"`
	Type      string     `json:"type,omitempty"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitzero"`
}
