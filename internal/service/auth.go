package service

import (
	"context"
	"log/slog"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// FlowState is a state of the session bootstrap flow.
type FlowState string

const (
	StateAnonymous               FlowState = "anonymous"
	StateAuthenticating          FlowState = "authenticating"
	StateAuthenticatedNoRecord   FlowState = "authenticated_no_record"
	StateAuthenticatedWithRecord FlowState = "authenticated_with_record"
	StateRejected                FlowState = "rejected"
	StateSessionPersisted        FlowState = "session_persisted"
	StateRedirected              FlowState = "redirected"
)

// LoginResult is the outcome of a completed (or rejected) login flow.
type LoginResult struct {
	State      FlowState
	Session    *domain.Session
	User       *domain.User
	RedirectTo string
}

// AuthService drives the session bootstrap flow: authenticate against the
// backend, ensure an application user record exists (lazily provisioning
// one on first login), reject inactive accounts, confirm the session, and
// hand the caller a redirect target only once the session has settled.
type AuthService struct {
	gateway domain.AuthGateway
	users   *UserService
	logger  *slog.Logger
}

func NewAuthService(gateway domain.AuthGateway, users *UserService, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{gateway: gateway, users: users, logger: logger.With("component", "auth")}
}

// Login runs the flow end to end. Credential and validation failures return
// an error with a user-facing message; an inactive account returns a
// LoginResult in StateRejected alongside the AccessDeniedError so callers
// can distinguish the terminal rejection from retryable failures.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if !domain.ValidEmail(email) {
		return nil, domain.ErrValidation("enter a valid email address")
	}
	if password == "" {
		return nil, domain.ErrValidation("password is required")
	}

	session, err := s.gateway.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.EnsureRecord(ctx, session.User)
	if err != nil {
		return nil, err
	}

	if !user.IsActive() {
		s.logger.Warn("login rejected: account not active", "user", user.ID, "status", user.Status)
		return &LoginResult{State: StateRejected, User: user},
			domain.ErrAccessDenied("account not active")
	}

	session = s.confirmSession(ctx, session)

	return &LoginResult{
		State:      StateRedirected,
		Session:    session,
		User:       user,
		RedirectTo: "/dashboard",
	}, nil
}

// confirmSession verifies the session is readable before the caller
// redirects, refreshing it once if the check fails. Confirmation is
// best-effort: a session that cannot be verified is still returned, since
// persistence failures must not hard-fail login.
func (s *AuthService) confirmSession(ctx context.Context, session *domain.Session) *domain.Session {
	_, err := s.gateway.UserFromToken(ctx, session.AccessToken)
	if err == nil {
		return session
	}
	s.logger.Warn("session check failed after sign-in, refreshing once", "error", err)

	refreshed, err := s.gateway.RefreshSession(ctx, session.RefreshToken)
	if err != nil {
		s.logger.Warn("session refresh failed; proceeding with original tokens", "error", err)
		return session
	}
	if refreshed.User.ID == "" {
		refreshed.User = session.User
	}
	return refreshed
}

// PersistedSession validates a client-obtained token pair replayed to the
// server so server-rendered requests can share the session. The access
// token must resolve to a principal; the pair is otherwise stored as-is.
func (s *AuthService) PersistedSession(ctx context.Context, accessToken, refreshToken string) (*domain.Session, error) {
	if accessToken == "" || refreshToken == "" {
		return nil, domain.ErrValidation("Invalid request format")
	}
	principal, err := s.gateway.UserFromToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *principal,
	}, nil
}

// Logout revokes the backend session. Revocation failures are logged only;
// the caller clears cookies and redirects regardless.
func (s *AuthService) Logout(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}
	if err := s.gateway.SignOut(ctx, accessToken); err != nil {
		s.logger.Warn("backend sign-out failed", "error", err)
	}
}

// SignUp registers a new identity and provisions its user record when the
// backend returns a usable session (projects with email confirmation
// enabled return none until the address is verified).
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*domain.Session, *domain.User, error) {
	if !domain.ValidEmail(email) {
		return nil, nil, domain.ErrValidation("enter a valid email address")
	}
	if len(password) < 6 {
		return nil, nil, domain.ErrValidation("password must be at least 6 characters")
	}

	session, err := s.gateway.SignUp(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}
	if session.User.ID == "" {
		return session, nil, nil
	}

	user, err := s.users.EnsureRecord(ctx, session.User)
	if err != nil {
		s.logger.Warn("could not provision user record at signup", "error", err)
		return session, nil, nil
	}
	return session, user, nil
}
