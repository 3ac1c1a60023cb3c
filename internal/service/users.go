package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// UserService handles user-record reads, profile updates, and the lazy
// provisioning of records for freshly authenticated principals.
type UserService struct {
	users  domain.UserRepository
	logger *slog.Logger
}

func NewUserService(users domain.UserRepository, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{users: users, logger: logger.With("component", "users")}
}

// EnsureRecord returns the user record for the principal, creating it with
// defaults if this is the principal's first login. Provisioning is
// idempotent: a concurrent create racing this one resolves to the existing
// row.
func (s *UserService) EnsureRecord(ctx context.Context, p domain.Principal) (*domain.User, error) {
	existing, err := s.users.GetProfile(ctx, p.ID)
	if err == nil {
		return existing, nil
	}
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	created, createErr := s.users.Create(ctx, domain.NewProvisionedUser(p))
	if createErr == nil {
		s.logger.Info("provisioned user record on first login", "user", p.ID)
		return created, nil
	}

	// Lost a provisioning race, or the row appeared between lookup and
	// insert. Re-read before giving up.
	if existing, err = s.users.GetProfile(ctx, p.ID); err == nil {
		return existing, nil
	}
	return nil, createErr
}

// Profile returns the user record for the given id.
func (s *UserService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetProfile(ctx, id)
}

// UpdateProfile applies profile edits for the given user. Role changes are
// stripped at the repository layer.
func (s *UserService) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*domain.User, error) {
	if len(fields) == 0 {
		return nil, domain.ErrValidation("no fields to update")
	}
	return s.users.UpdateProfile(ctx, id, fields)
}

// Team returns the active users visible on manager/team views. Only
// managers and admins may call it.
func (s *UserService) Team(ctx context.Context, requester *domain.User) ([]domain.User, error) {
	if requester == nil || !requester.IsManager() {
		return nil, domain.ErrAccessDenied("manager role required")
	}
	return s.users.ListActive(ctx)
}

// ListByRole returns users holding the given role.
func (s *UserService) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	if role != domain.RoleSales && role != domain.RoleManager && role != domain.RoleAdmin {
		return nil, domain.ErrValidation("unknown role %q", role)
	}
	return s.users.ListByRole(ctx, role)
}
