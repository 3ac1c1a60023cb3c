package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8*time.Second, cfg.BackendTimeout)
	assert.Equal(t, float64(100), cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv_RequiresURLAndAnonKey(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "")
	t.Setenv("SUPABASE_URL_PUBLIC", "")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "")
	_, err := LoadFromEnv()
	require.Error(t, err)

	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "")
	_, err = LoadFromEnv()
	require.Error(t, err)
}

// Several deployments name the same values differently; the first
// non-empty variable in each chain wins.
func TestLoadFromEnv_FallbackChains(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "https://fallback.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "anon-public")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "anon-public", cfg.SupabaseAnonKey)
}

func TestLoadFromEnv_ChainOrderPrefersFirst(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://primary.supabase.co")
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "https://secondary.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://primary.supabase.co", cfg.SupabaseURL)
}

func TestServiceCredentials_FallbackChain(t *testing.T) {
	for _, name := range ServiceKeyVars {
		t.Setenv(name, "")
	}
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SUPABASE_SERVICE_ROLE", "svc-key")

	url, key, missing := ServiceCredentials()
	assert.Equal(t, "https://proj.supabase.co", url)
	assert.Equal(t, "svc-key", key)
	assert.Empty(t, missing)
}

// The missing list names the first variable of each unresolved chain, which
// is what operators are told to set.
func TestServiceCredentials_MissingNamesFirstVariable(t *testing.T) {
	for _, name := range ServiceKeyVars {
		t.Setenv(name, "")
	}
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "")
	t.Setenv("SUPABASE_URL_PUBLIC", "")

	_, _, missing := ServiceCredentials()
	assert.Equal(t, []string{"SUPABASE_SERVICE_ROLE_KEY"}, missing)

	t.Setenv("SUPABASE_URL", "")
	_, _, missing = ServiceCredentials()
	assert.Equal(t, []string{"SUPABASE_URL", "SUPABASE_SERVICE_ROLE_KEY"}, missing)
}

func TestLoadFromEnv_AuthDefaultsFromProjectURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SUPABASE_JWT_SECRET", "")
	t.Setenv("AUTH_JWKS_URL", "")
	t.Setenv("AUTH_ISSUER_URL", "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://proj.supabase.co/auth/v1", cfg.Auth.IssuerURL)
	assert.Equal(t, "https://proj.supabase.co/auth/v1/.well-known/jwks.json", cfg.Auth.JWKSURL)
	assert.Equal(t, time.Hour, cfg.Auth.JWKSCacheTTL)
	assert.NotEmpty(t, cfg.Warnings)
}

func TestLoadFromEnv_ProductionRejectsCORSWildcard(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	_, err := LoadFromEnv()
	require.Error(t, err)

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://crm.example.com")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://crm.example.com"}, cfg.CORSAllowedOrigins)
}

func TestSlogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	} {
		cfg := &Config{LogLevel: in}
		assert.Equal(t, want, cfg.SlogLevel(), in)
	}
}

func TestLoadFromEnv_BadTimeoutFallsBackWithWarning(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("BACKEND_TIMEOUT", "not-a-duration")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 8*time.Second, cfg.BackendTimeout)
	require.NotEmpty(t, cfg.Warnings)
}
