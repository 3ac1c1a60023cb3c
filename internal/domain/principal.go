package domain

// Principal is the authenticated identity produced by the backend's auth
// service. It is re-derived per request and never stored locally.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the token pair returned by a successful sign-in. Access tokens
// are short-lived JWTs; refresh tokens are opaque.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
	TokenType    string    `json:"token_type"`
	User         Principal `json:"user"`
}
