package repository

import (
	"context"

	"github.com/jordaneaster/phoenix/internal/backend"
	"github.com/jordaneaster/phoenix/internal/domain"
)

type LeadRepo struct {
	c *backend.Client
}

func NewLeadRepo(c *backend.Client) *LeadRepo {
	return &LeadRepo{c: c}
}

var _ domain.LeadRepository = (*LeadRepo)(nil)

// CountAssigned is a head-only filtered count; leads have no stored
// procedure fast path.
func (r *LeadRepo) CountAssigned(ctx context.Context, userID string) (int, error) {
	return r.c.From("leads").Eq("assigned_to", userID).Count(ctx)
}

func (r *LeadRepo) ListAssigned(ctx context.Context, userID string) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.c.From("leads").
		Eq("assigned_to", userID).
		Order("created_at", false).
		Do(ctx, &leads)
	return leads, err
}

func (r *LeadRepo) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	var l domain.Lead
	if err := r.c.From("leads").Eq("id", id).Single(ctx, &l); err != nil {
		if backend.IsNotFound(err) {
			return nil, domain.ErrNotFound("lead %s not found", id)
		}
		return nil, err
	}
	return &l, nil
}

func (r *LeadRepo) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	var created []domain.Lead
	if err := r.c.From("leads").Insert(ctx, l, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return l, nil
	}
	return &created[0], nil
}

func (r *LeadRepo) Update(ctx context.Context, id string, fields map[string]any) (*domain.Lead, error) {
	var updated []domain.Lead
	if err := r.c.From("leads").Eq("id", id).Update(ctx, fields, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, domain.ErrNotFound("lead %s not found", id)
	}
	return &updated[0], nil
}

func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	return r.c.From("leads").Eq("id", id).Delete(ctx)
}
