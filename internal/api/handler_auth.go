package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jordaneaster/phoenix/internal/domain"
	"github.com/jordaneaster/phoenix/internal/middleware"
	"github.com/jordaneaster/phoenix/internal/service"
)

// refreshCookieMaxAge keeps the refresh token around long enough for the
// backend to rotate it on the next visit.
const refreshCookieMaxAge = 30 * 24 * int(time.Hour/time.Second)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Alternate shape: a client that already holds a session posts the
	// auth event and tokens so the server can set the cookies.
	Event   string `json:"event"`
	Session *struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int64  `json:"expires_in"`
	} `json:"session"`
}

// Login handles both login shapes: email/password credentials, and a
// pre-established session posted alongside a SIGNED_IN event.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Session != nil || req.Event != "" {
		h.loginWithSession(w, r, &req)
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var accessDenied *domain.AccessDeniedError
		if errors.As(err, &accessDenied) {
			clearSessionCookies(w)
			respondError(w, http.StatusForbidden, accessDenied.Message)
			return
		}
		var validation *domain.ValidationError
		if errors.As(err, &validation) {
			respondError(w, http.StatusBadRequest, validation.Message)
			return
		}
		respondError(w, http.StatusUnauthorized, "Invalid login credentials")
		return
	}

	setSessionCookies(w, result.Session)
	respondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"user":        result.User,
		"redirect_to": result.RedirectTo,
	})
}

func (h *Handler) loginWithSession(w http.ResponseWriter, r *http.Request, req *loginRequest) {
	if req.Event != "SIGNED_IN" || req.Session == nil || req.Session.AccessToken == "" {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := h.auth.PersistedSession(r.Context(), req.Session.AccessToken, req.Session.RefreshToken)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if req.Session.ExpiresIn > 0 {
		session.ExpiresIn = req.Session.ExpiresIn
	}

	setSessionCookies(w, session)
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Auth cookie set successfully",
	})
}

// Logout revokes the session upstream on a best-effort basis, clears the
// session cookies, and sends browsers back to the login page. API clients
// asking for JSON get a success body instead of the redirect.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.TokenFromRequest(r); token != "" {
		h.auth.Logout(r.Context(), token)
	}
	clearSessionCookies(w)

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new account. When the backend requires email
// confirmation the session comes back unusable and only a message is
// returned; otherwise the cookies are set right away.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, user, err := h.auth.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if session.AccessToken == "" {
		respondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Check your email to confirm your account",
		})
		return
	}

	setSessionCookies(w, session)
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}

type postSignupRequest struct {
	UserID   string         `json:"userId"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"metadata"`
}

// PostSignup fires the signup webhook. Delivery is fire-and-forget, so the
// response is a success for any well-formed payload.
func (h *Handler) PostSignup(w http.ResponseWriter, r *http.Request) {
	var req postSignupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	h.notifier.NotifySignup(req.UserID, req.Email)
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

type notifyRequest struct {
	EventType string `json:"event_type"`
	UserID    string `json:"user_id"`
	UserEmail string `json:"user_email"`
}

// NotifyN8N relays an auth event to the automation webhook. Failures are
// logged, never surfaced: the caller's flow must not depend on the relay.
func (h *Handler) NotifyN8N(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	event := service.AuthEvent{
		Event:     req.EventType,
		EventType: req.EventType,
		UserID:    req.UserID,
		UserEmail: req.UserEmail,
	}
	if err := h.notifier.Relay(r.Context(), event); err != nil {
		h.logger.Warn("webhook relay failed", "event", req.EventType, "error", err)
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func setSessionCookies(w http.ResponseWriter, session *domain.Session) {
	maxAge := int(session.ExpiresIn)
	if maxAge <= 0 {
		maxAge = 3600
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    session.AccessToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	if session.RefreshToken != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.RefreshTokenCookie,
			Value:    session.RefreshToken,
			Path:     "/",
			MaxAge:   refreshCookieMaxAge,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
