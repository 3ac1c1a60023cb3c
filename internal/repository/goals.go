package repository

import (
	"context"
	"time"

	"github.com/jordaneaster/phoenix/internal/backend"
	"github.com/jordaneaster/phoenix/internal/domain"
)

// GoalRepo operates on the accountability_goals resource. It is constructed
// per request from service-role credentials rather than wired at startup,
// because goal administration bypasses row-level security.
type GoalRepo struct {
	c *backend.Client
}

func NewGoalRepo(c *backend.Client) *GoalRepo {
	return &GoalRepo{c: c}
}

var _ domain.GoalRepository = (*GoalRepo)(nil)

func (r *GoalRepo) List(ctx context.Context) ([]domain.Goal, error) {
	var goals []domain.Goal
	err := r.c.From("accountability_goals").Do(ctx, &goals)
	if goals == nil {
		goals = []domain.Goal{}
	}
	return goals, err
}

func (r *GoalRepo) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	record := map[string]any{
		"user_id":      g.UserID,
		"goal_type":    g.GoalType,
		"target_value": g.TargetValue,
		"deadline":     g.Deadline,
		"progress":     0,
		"created_at":   time.Now().UTC().Format(time.RFC3339),
	}
	var created []domain.Goal
	if err := r.c.From("accountability_goals").Insert(ctx, record, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return g, nil
	}
	return &created[0], nil
}
