package domain

import "time"

// Goal is an accountability goal tracked per user.
type Goal struct {
	ID          string     `json:"id,omitempty"`
	UserID      *string    `json:"user_id"`
	GoalType    string     `json:"goal_type"`
	TargetValue float64    `json:"target_value"`
	Progress    float64    `json:"progress"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"created_at,omitzero"`
}

// Validate checks the fields required to create a goal.
func (g *Goal) Validate() error {
	if g.GoalType == "" || g.TargetValue == 0 {
		return ErrValidation("Missing goal_type or target_value")
	}
	return nil
}
