package repository

import (
	"context"
	"time"

	"github.com/jordaneaster/phoenix/internal/backend"
	"github.com/jordaneaster/phoenix/internal/domain"
)

type FollowUpRepo struct {
	c *backend.Client
}

func NewFollowUpRepo(c *backend.Client) *FollowUpRepo {
	return &FollowUpRepo{c: c}
}

var _ domain.FollowUpRepository = (*FollowUpRepo)(nil)

// GetUserFollowUps is the stored-procedure fast path for a user's pending
// follow-ups.
func (r *FollowUpRepo) GetUserFollowUps(ctx context.Context, userID string) ([]domain.FollowUp, error) {
	raw, err := r.c.RPC(ctx, "get_user_follow_ups", map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	return backend.DecodeRows[domain.FollowUp](raw)
}

// CountPending is the fallback count: follow-ups assigned to the user that
// are not completed.
func (r *FollowUpRepo) CountPending(ctx context.Context, userID string) (int, error) {
	return r.c.From("follow_ups").
		Eq("assigned_to", userID).
		Eq("completed", false).
		Count(ctx)
}

func (r *FollowUpRepo) ListByProspect(ctx context.Context, prospectID string) ([]domain.FollowUp, error) {
	var followUps []domain.FollowUp
	err := r.c.From("follow_ups").
		Eq("prospect_id", prospectID).
		Order("due_date", true).
		Do(ctx, &followUps)
	return followUps, err
}

func (r *FollowUpRepo) ListByAssignee(ctx context.Context, userID string, includeCompleted bool) ([]domain.FollowUp, error) {
	q := r.c.From("follow_ups").Eq("assigned_to", userID).Order("due_date", true)
	if !includeCompleted {
		q = q.Eq("completed", false)
	}
	var followUps []domain.FollowUp
	err := q.Do(ctx, &followUps)
	return followUps, err
}

// ListDueBetween returns incomplete follow-ups due in [from, to).
func (r *FollowUpRepo) ListDueBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.FollowUp, error) {
	q := r.c.From("follow_ups").
		Filter("due_date", "gte", from.UTC().Format(time.RFC3339)).
		Filter("due_date", "lt", to.UTC().Format(time.RFC3339)).
		Eq("completed", false).
		Order("due_date", true)
	if userID != "" {
		q = q.Eq("assigned_to", userID)
	}
	var followUps []domain.FollowUp
	err := q.Do(ctx, &followUps)
	return followUps, err
}

// ListOverdue returns incomplete follow-ups due before the given time.
func (r *FollowUpRepo) ListOverdue(ctx context.Context, userID string, before time.Time) ([]domain.FollowUp, error) {
	q := r.c.From("follow_ups").
		Filter("due_date", "lt", before.UTC().Format(time.RFC3339)).
		Eq("completed", false).
		Order("due_date", true)
	if userID != "" {
		q = q.Eq("assigned_to", userID)
	}
	var followUps []domain.FollowUp
	err := q.Do(ctx, &followUps)
	return followUps, err
}

func (r *FollowUpRepo) Create(ctx context.Context, f *domain.FollowUp) (*domain.FollowUp, error) {
	var created []domain.FollowUp
	if err := r.c.From("follow_ups").Insert(ctx, f, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return f, nil
	}
	return &created[0], nil
}

// MarkCompleted flags the given follow-ups complete, stamping the completion
// time and optional notes on each.
func (r *FollowUpRepo) MarkCompleted(ctx context.Context, ids []string, notes string) ([]domain.FollowUp, error) {
	if len(ids) == 0 {
		return nil, domain.ErrValidation("no follow-up ids given")
	}
	fields := map[string]any{
		"completed":       true,
		"completion_date": time.Now().UTC().Format(time.RFC3339),
	}
	if notes != "" {
		fields["completion_notes"] = notes
	}
	var updated []domain.FollowUp
	err := r.c.From("follow_ups").In("id", ids).Update(ctx, fields, &updated)
	return updated, err
}
