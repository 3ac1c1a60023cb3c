package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jordaneaster/phoenix/internal/backend"
	"github.com/jordaneaster/phoenix/internal/domain"
)

type ProspectRepo struct {
	c *backend.Client
}

func NewProspectRepo(c *backend.Client) *ProspectRepo {
	return &ProspectRepo{c: c}
}

var _ domain.ProspectRepository = (*ProspectRepo)(nil)

// GetUserProspects is the stored-procedure fast path for a user's prospects.
func (r *ProspectRepo) GetUserProspects(ctx context.Context, userID string) ([]domain.Prospect, error) {
	raw, err := r.c.RPC(ctx, "get_user_prospects", map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	return backend.DecodeRows[domain.Prospect](raw)
}

func (r *ProspectRepo) CountAssigned(ctx context.Context, userID string) (int, error) {
	return r.c.From("prospects").Eq("assigned_to", userID).Count(ctx)
}

func (r *ProspectRepo) ListByStatus(ctx context.Context, status string) ([]domain.Prospect, error) {
	var prospects []domain.Prospect
	err := r.c.From("prospects").Eq("status", status).Order("updated_at", false).Do(ctx, &prospects)
	return prospects, err
}

func (r *ProspectRepo) ListNeedingFollowup(ctx context.Context, userID string) ([]domain.Prospect, error) {
	q := r.c.From("prospects").Eq("needs_followup", true).Order("followup_date", true)
	if userID != "" {
		q = q.Eq("assigned_to", userID)
	}
	var prospects []domain.Prospect
	err := q.Do(ctx, &prospects)
	return prospects, err
}

// Search does a case-insensitive substring match across name, email, and
// company.
func (r *ProspectRepo) Search(ctx context.Context, term string) ([]domain.Prospect, error) {
	pattern := "*" + escapeSearchTerm(term) + "*"
	var prospects []domain.Prospect
	err := r.c.From("prospects").
		Or(fmt.Sprintf("name.ilike.%s,email.ilike.%s,company.ilike.%s", pattern, pattern, pattern)).
		Do(ctx, &prospects)
	return prospects, err
}

func (r *ProspectRepo) GetByID(ctx context.Context, id string) (*domain.Prospect, error) {
	var p domain.Prospect
	if err := r.c.From("prospects").Eq("id", id).Single(ctx, &p); err != nil {
		if backend.IsNotFound(err) {
			return nil, domain.ErrNotFound("prospect %s not found", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProspectRepo) Create(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error) {
	var created []domain.Prospect
	if err := r.c.From("prospects").Insert(ctx, p, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return p, nil
	}
	return &created[0], nil
}

func (r *ProspectRepo) Update(ctx context.Context, id string, fields map[string]any) (*domain.Prospect, error) {
	var updated []domain.Prospect
	if err := r.c.From("prospects").Eq("id", id).Update(ctx, fields, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, domain.ErrNotFound("prospect %s not found", id)
	}
	return &updated[0], nil
}

func (r *ProspectRepo) Delete(ctx context.Context, id string) error {
	return r.c.From("prospects").Eq("id", id).Delete(ctx)
}

// escapeSearchTerm strips the characters that would break the disjunctive
// filter expression the search is embedded in.
func escapeSearchTerm(term string) string {
	replacer := strings.NewReplacer(",", " ", "(", " ", ")", " ", ".", " ")
	return strings.TrimSpace(replacer.Replace(term))
}
