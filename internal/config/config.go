// Package config handles application configuration and environment loading.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variable fallback chains. Deployments of this system have
// historically used several names for the same logical value; resolution is
// always "first non-empty wins", in this order.
var (
	SupabaseURLVars = []string{"SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL", "SUPABASE_URL_PUBLIC"}
	AnonKeyVars     = []string{"SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_ANON_KEY"}
	ServiceKeyVars  = []string{"SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_KEY", "SUPABASE_SERVICE_ROLE", "SUPABASE_SERVICE_KEY"}
)

// AuthConfig holds token-verification configuration. Access tokens are
// verified either against the project's legacy shared JWT secret (HS256) or
// its JWKS endpoint, whichever is configured.
type AuthConfig struct {
	JWTSecret    string        // HS256 shared secret (SUPABASE_JWT_SECRET)
	JWKSURL      string        // override JWKS URL; defaults from the project URL
	IssuerURL    string        // expected token issuer; defaults to {url}/auth/v1
	JWKSCacheTTL time.Duration // JWKS cache duration (default: 1h)
}

// Config holds the configuration for the CRM HTTP API.
type Config struct {
	SupabaseURL     string // hosted backend project URL
	SupabaseAnonKey string // public API key for user-scoped calls

	ListenAddr     string        // HTTP listen address (default ":8080")
	LogLevel       string        // log level: debug, info, warn, error (default "info")
	Env            string        // environment: "development" (default) or "production"
	BackendTimeout time.Duration // uniform per-call backend timeout (default 8s)

	// Rate limiting
	RateLimitRPS   float64 // sustained requests per second (default 100)
	RateLimitBurst int     // burst capacity (default 200)

	// CORS
	CORSAllowedOrigins []string // allowed origins for CORS (default: ["*"])

	// Outbound signup/auth event webhook (optional; best-effort only).
	N8NWebhookURL string
	N8NAuthSecret string

	// Auth holds token verification configuration.
	Auth AuthConfig

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when the server is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		SupabaseURL:     FirstNonEmpty(SupabaseURLVars...),
		SupabaseAnonKey: FirstNonEmpty(AnonKeyVars...),
		ListenAddr:      os.Getenv("LISTEN_ADDR"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		Env:             os.Getenv("ENV"),
		N8NWebhookURL:   os.Getenv("N8N_WEBHOOK_URL"),
		N8NAuthSecret:   os.Getenv("N8N_AUTH_SECRET"),
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}

	// Rate limiting
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		}
	}

	if v := os.Getenv("BACKEND_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.BackendTimeout = d
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("BACKEND_TIMEOUT %q is not a duration — using default", v))
		}
	}

	// CORS
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = origins
	}

	// Auth config
	cfg.Auth = AuthConfig{
		JWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		JWKSURL:   os.Getenv("AUTH_JWKS_URL"),
		IssuerURL: os.Getenv("AUTH_ISSUER_URL"),
	}
	if v := os.Getenv("AUTH_JWKS_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Auth.JWKSCacheTTL = d
		}
	}

	// Auth defaults derive from the project URL.
	if cfg.Auth.IssuerURL == "" {
		cfg.Auth.IssuerURL = strings.TrimRight(cfg.SupabaseURL, "/") + "/auth/v1"
	}
	if cfg.Auth.JWTSecret == "" && cfg.Auth.JWKSURL == "" {
		cfg.Auth.JWKSURL = cfg.Auth.IssuerURL + "/.well-known/jwks.json"
		cfg.Warnings = append(cfg.Warnings, "SUPABASE_JWT_SECRET not set — token verification will use the project JWKS endpoint")
	}
	if cfg.Auth.JWKSCacheTTL == 0 {
		cfg.Auth.JWKSCacheTTL = time.Hour
	}

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.BackendTimeout == 0 {
		cfg.BackendTimeout = 8 * time.Second
	}
	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 100
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 200
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.N8NWebhookURL == "" {
		cfg.Warnings = append(cfg.Warnings, "N8N_WEBHOOK_URL not set — signup/auth event notifications are disabled")
	}

	// Production mode: insecure defaults are fatal errors.
	if cfg.IsProduction() {
		if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
			return nil, fmt.Errorf("CORS wildcard (*) is not allowed in production (ENV=production)")
		}
	}

	return cfg, nil
}

// FirstNonEmpty returns the value of the first environment variable in the
// chain that is set to a non-empty value.
func FirstNonEmpty(names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// ServiceCredentials resolves the backend URL and service-role key through
// their fallback chains. Both are read at request time, not at startup, so
// operators can fix a misconfigured deployment without a restart. The
// missing slice names the first variable of each unresolvable chain.
func ServiceCredentials() (url, key string, missing []string) {
	url = FirstNonEmpty(SupabaseURLVars...)
	key = FirstNonEmpty(ServiceKeyVars...)
	if url == "" {
		missing = append(missing, SupabaseURLVars[0])
	}
	if key == "" {
		missing = append(missing, ServiceKeyVars[0])
	}
	return url, key, missing
}
