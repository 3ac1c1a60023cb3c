package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// AuthClient talks to the backend's GoTrue authentication endpoints.
type AuthClient struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *slog.Logger
}

// NewAuthClient creates an AuthClient for the given project URL and anon key.
func NewAuthClient(baseURL, apiKey string, opts ...Option) *AuthClient {
	// Reuse Client options by building a throwaway Client carrier.
	carrier := New(baseURL, apiKey, opts...)
	return &AuthClient{
		baseURL: carrier.baseURL,
		apiKey:  carrier.apiKey,
		httpc:   carrier.httpc,
		logger:  carrier.logger,
	}
}

var _ domain.AuthGateway = (*AuthClient)(nil)

// SignInWithPassword authenticates with email and password and returns the
// session token pair.
func (a *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	return a.tokenRequest(ctx, "password", map[string]string{
		"email":    email,
		"password": password,
	})
}

// RefreshSession exchanges a refresh token for a fresh session.
func (a *AuthClient) RefreshSession(ctx context.Context, refreshToken string) (*domain.Session, error) {
	return a.tokenRequest(ctx, "refresh_token", map[string]string{
		"refresh_token": refreshToken,
	})
}

// SignUp registers a new credentialed identity.
func (a *AuthClient) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	var session domain.Session
	if err := a.post(ctx, "/auth/v1/signup", "", map[string]string{
		"email":    email,
		"password": password,
	}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignOut revokes the session behind the given access token.
func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	return a.post(ctx, "/auth/v1/logout", accessToken, nil, nil)
}

// UserFromToken resolves the principal behind an access token. The backend
// rate-limits this endpoint aggressively, so rate-limit rejections are
// retried with exponential backoff (100ms base, up to 3 attempts).
func (a *AuthClient) UserFromToken(ctx context.Context, accessToken string) (*domain.Principal, error) {
	var principal domain.Principal
	backoff := retry.WithMaxRetries(2, retry.NewExponential(100*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/auth/v1/user", nil)
		if err != nil {
			return &Error{Message: err.Error()}
		}
		a.setHeaders(req, accessToken)
		getErr := a.execute(req, &principal)
		if getErr != nil && IsRateLimited(getErr) {
			a.logger.Warn("session retrieval rate-limited, backing off", "error", getErr)
			return retry.RetryableError(getErr)
		}
		return getErr
	})
	if err != nil {
		return nil, err
	}
	return &principal, nil
}

func (a *AuthClient) tokenRequest(ctx context.Context, grantType string, body map[string]string) (*domain.Session, error) {
	var session domain.Session
	if err := a.post(ctx, "/auth/v1/token?grant_type="+grantType, "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (a *AuthClient) post(ctx context.Context, path, token string, body, dest any) error {
	var rdr io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: err.Error()}
		}
		rdr = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, rdr)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	a.setHeaders(req, token)
	return a.execute(req, dest)
}

func (a *AuthClient) setHeaders(req *http.Request, token string) {
	req.Header.Set("apikey", a.apiKey)
	if token == "" {
		token = a.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func (a *AuthClient) execute(req *http.Request, dest any) error {
	resp, err := a.httpc.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return parseErrorBody(resp.StatusCode, raw)
	}
	if readErr != nil {
		return &Error{Status: resp.StatusCode, Message: readErr.Error()}
	}
	if dest == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return &Error{Message: "decode auth response: " + err.Error()}
	}
	return nil
}

// ProjectRef extracts the project reference from a Supabase project URL,
// used for the session cookie name pair.
func ProjectRef(baseURL string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://")
	if idx := strings.Index(host, "."); idx > 0 {
		return host[:idx]
	}
	return host
}
