package repository

import (
	"context"
	"time"

	"github.com/jordaneaster/phoenix/internal/backend"
	"github.com/jordaneaster/phoenix/internal/domain"
)

type TrainingRepo struct {
	c *backend.Client
}

func NewTrainingRepo(c *backend.Client) *TrainingRepo {
	return &TrainingRepo{c: c}
}

var _ domain.TrainingRepository = (*TrainingRepo)(nil)

// CountIncomplete computes the set-difference cardinality: training items
// whose id is absent from the user's progress rows. The REST boundary has
// no subquery filter, so the completed set is fetched first and excluded
// from the count with a not-in filter.
func (r *TrainingRepo) CountIncomplete(ctx context.Context, userID string) (int, error) {
	completed, err := r.ListProgress(ctx, userID)
	if err != nil {
		return 0, err
	}
	q := r.c.From("training_content")
	if len(completed) > 0 {
		ids := make([]string, 0, len(completed))
		for _, p := range completed {
			ids = append(ids, p.TrainingID)
		}
		q = q.NotIn("id", ids)
	}
	return q.Count(ctx)
}

func (r *TrainingRepo) ListContent(ctx context.Context) ([]domain.TrainingItem, error) {
	var items []domain.TrainingItem
	err := r.c.From("training_content").Order("created_at", true).Do(ctx, &items)
	return items, err
}

func (r *TrainingRepo) ListProgress(ctx context.Context, userID string) ([]domain.TrainingProgress, error) {
	var progress []domain.TrainingProgress
	err := r.c.From("training_progress").
		Select("training_id, user_id, completed_at").
		Eq("user_id", userID).
		Do(ctx, &progress)
	return progress, err
}

func (r *TrainingRepo) MarkCompleted(ctx context.Context, userID, trainingID string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	return r.c.From("training_progress").Insert(ctx, map[string]any{
		"user_id":      userID,
		"training_id":  trainingID,
		"completed_at": now,
	}, nil)
}
