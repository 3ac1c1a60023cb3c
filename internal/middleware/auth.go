package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// Session cookie names. The login handler persists the token pair under
// these names so server-rendered requests can read the same session the
// client obtained.
const (
	AccessTokenCookie  = "sb-access-token"
	RefreshTokenCookie = "sb-refresh-token"
)

// Auth returns middleware that authenticates requests via a bearer token or
// the session cookie, stores the principal and the raw access token in the
// request context, and rejects everything else with 401.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				writeUnauthorized(w, "Not authenticated")
				return
			}

			claims, err := validator.Validate(r.Context(), token)
			if err != nil {
				writeUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := domain.WithPrincipal(r.Context(), domain.Principal{
				ID:    claims.Subject,
				Email: claims.Email,
			})
			ctx = domain.WithAccessToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromRequest extracts the access token from the Authorization header,
// falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": msg,
	})
}
