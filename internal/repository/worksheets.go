package repository

import (
	"context"

	"github.com/jordaneaster/phoenix/internal/backend"
	"github.com/jordaneaster/phoenix/internal/domain"
)

type WorksheetRepo struct {
	c *backend.Client
}

func NewWorksheetRepo(c *backend.Client) *WorksheetRepo {
	return &WorksheetRepo{c: c}
}

var _ domain.WorksheetRepository = (*WorksheetRepo)(nil)

// GetUserWorksheets is the stored-procedure fast path for a user's worksheets.
func (r *WorksheetRepo) GetUserWorksheets(ctx context.Context, userID string) ([]domain.Worksheet, error) {
	raw, err := r.c.RPC(ctx, "get_user_worksheets", map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	return backend.DecodeRows[domain.Worksheet](raw)
}

func (r *WorksheetRepo) CountCreated(ctx context.Context, userID string) (int, error) {
	return r.c.From("worksheets").Eq("created_by", userID).Count(ctx)
}

// ListWithProspects returns worksheets with their prospect embedded via a
// nested-select expression; the join itself happens on the backend.
func (r *WorksheetRepo) ListWithProspects(ctx context.Context, limit, offset int) ([]domain.Worksheet, error) {
	q := r.c.From("worksheets").
		Select("*,prospects(id,name,email,company)").
		Order("created_at", false)
	if limit > 0 {
		q = q.Range(offset, offset+limit-1)
	}
	var worksheets []domain.Worksheet
	err := q.Do(ctx, &worksheets)
	return worksheets, err
}

func (r *WorksheetRepo) GetByID(ctx context.Context, id string) (*domain.Worksheet, error) {
	var w domain.Worksheet
	if err := r.c.From("worksheets").Eq("id", id).Single(ctx, &w); err != nil {
		if backend.IsNotFound(err) {
			return nil, domain.ErrNotFound("worksheet %s not found", id)
		}
		return nil, err
	}
	return &w, nil
}

func (r *WorksheetRepo) Create(ctx context.Context, w *domain.Worksheet) (*domain.Worksheet, error) {
	var created []domain.Worksheet
	if err := r.c.From("worksheets").Insert(ctx, w, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return w, nil
	}
	return &created[0], nil
}

func (r *WorksheetRepo) Update(ctx context.Context, id string, fields map[string]any) (*domain.Worksheet, error) {
	var updated []domain.Worksheet
	if err := r.c.From("worksheets").Eq("id", id).Update(ctx, fields, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, domain.ErrNotFound("worksheet %s not found", id)
	}
	return &updated[0], nil
}

func (r *WorksheetRepo) Delete(ctx context.Context, id string) error {
	return r.c.From("worksheets").Eq("id", id).Delete(ctx)
}
