// Package repository translates query intents for each CRM resource into
// backend client calls. Repository methods are pure translations: failures
// propagate to callers unchanged except for the not-found mapping on
// single-row lookups.
package repository

import (
	"context"

	"github.com/jordaneaster/phoenix/internal/backend"
	"github.com/jordaneaster/phoenix/internal/domain"
)

const userProfileColumns = "id, email, full_name, phone_number, role, department, status"

type UserRepo struct {
	c *backend.Client
}

func NewUserRepo(c *backend.Client) *UserRepo {
	return &UserRepo{c: c}
}

var _ domain.UserRepository = (*UserRepo)(nil)

// GetUserByID is the stored-procedure fast path for profile lookups. The
// procedure sometimes answers with a single-element array and sometimes
// with a bare object, so the result is normalized before decoding.
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	raw, err := r.c.RPC(ctx, "get_user_by_id", map[string]any{"user_id": id})
	if err != nil {
		return nil, err
	}
	var u domain.User
	found, err := backend.UnwrapFirstOrValue(raw, &u)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound("user %s not found", id)
	}
	return &u, nil
}

// GetProfile is the direct table lookup used as the fast path's fallback.
func (r *UserRepo) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.c.From("users").
		Select(userProfileColumns).
		Eq("id", id).
		Single(ctx, &u)
	if err != nil {
		if backend.IsNotFound(err) {
			return nil, domain.ErrNotFound("user %s not found", id)
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.c.From("users").Eq("email", email).Single(ctx, &u)
	if err != nil {
		if backend.IsNotFound(err) {
			return nil, domain.ErrNotFound("user with email %s not found", email)
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	var created []domain.User
	if err := r.c.From("users").Insert(ctx, u, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return u, nil
	}
	return &created[0], nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.c.From("users").Order("full_name", true).Do(ctx, &users)
	return users, err
}

func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	var users []domain.User
	err := r.c.From("users").Eq("role", role).Order("full_name", true).Do(ctx, &users)
	return users, err
}

// ListActive tries the get_active_users procedure first and falls back to a
// filtered select when the procedure is unavailable.
func (r *UserRepo) ListActive(ctx context.Context) ([]domain.User, error) {
	raw, err := r.c.RPC(ctx, "get_active_users", nil)
	if err == nil {
		return backend.DecodeRows[domain.User](raw)
	}
	var users []domain.User
	fallbackErr := r.c.From("users").
		Eq("status", domain.StatusActive).
		Order("full_name", true).
		Do(ctx, &users)
	return users, fallbackErr
}

// UpdateProfile applies the given fields to a user row. The role field is
// stripped so profile edits can never escalate privileges.
func (r *UserRepo) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*domain.User, error) {
	safe := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "role" {
			continue
		}
		safe[k] = v
	}
	var updated []domain.User
	if err := r.c.From("users").Eq("id", id).Update(ctx, safe, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, domain.ErrNotFound("user %s not found", id)
	}
	return &updated[0], nil
}
