// Package middleware provides HTTP middleware for authentication, request
// IDs, and rate limiting.
package middleware

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims holds the parsed claims from a validated access token.
type TokenClaims struct {
	Subject string
	Email   string
	Role    string
	Raw     map[string]interface{}
}

// TokenValidator validates an access token and returns the parsed claims.
type TokenValidator interface {
	Validate(ctx context.Context, tokenString string) (*TokenClaims, error)
}

// HS256Validator validates tokens signed with the project's legacy shared
// JWT secret.
type HS256Validator struct {
	secret []byte
}

// NewHS256Validator creates a validator for HS256-signed access tokens.
func NewHS256Validator(secret string) (*HS256Validator, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	return &HS256Validator{secret: []byte(secret)}, nil
}

// Validate verifies an HS256 token and extracts claims.
func (v *HS256Validator) Validate(_ context.Context, tokenString string) (*TokenClaims, error) {
	tok, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method == nil || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	mapClaims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}
	return claimsFromRaw(map[string]interface{}(mapClaims))
}

// JWKSValidator validates tokens against the project's JWKS endpoint.
// Projects migrated to asymmetric signing keys publish them there.
type JWKSValidator struct {
	verifier *oidc.IDTokenVerifier
}

// NewJWKSValidator creates a validator that fetches and caches signing keys
// from jwksURL and requires the given issuer.
func NewJWKSValidator(ctx context.Context, jwksURL, issuerURL string) (*JWKSValidator, error) {
	if jwksURL == "" {
		return nil, fmt.Errorf("JWKS URL is required")
	}
	keySet := oidc.NewRemoteKeySet(ctx, jwksURL)
	verifier := oidc.NewVerifier(issuerURL, keySet, &oidc.Config{
		// Supabase access tokens carry the "authenticated" audience, not a
		// client ID; audience is checked by role claim instead.
		SkipClientIDCheck: true,
	})
	return &JWKSValidator{verifier: verifier}, nil
}

// Validate verifies the token against the cached key set.
func (v *JWKSValidator) Validate(ctx context.Context, tokenString string) (*TokenClaims, error) {
	idToken, err := v.verifier.Verify(ctx, tokenString)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	var raw map[string]interface{}
	if err := idToken.Claims(&raw); err != nil {
		return nil, fmt.Errorf("parse claims: %w", err)
	}
	return claimsFromRaw(raw)
}

func claimsFromRaw(raw map[string]interface{}) (*TokenClaims, error) {
	claims := &TokenClaims{Raw: raw}
	if sub, ok := raw["sub"].(string); ok {
		claims.Subject = sub
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	if email, ok := raw["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := raw["role"].(string); ok {
		claims.Role = role
	}
	return claims, nil
}
