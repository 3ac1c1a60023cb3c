// Package app provides application-level wiring and dependency injection
// for the CRM API following hexagonal architecture.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jordaneaster/phoenix/internal/api"
	"github.com/jordaneaster/phoenix/internal/backend"
	"github.com/jordaneaster/phoenix/internal/config"
	"github.com/jordaneaster/phoenix/internal/domain"
	"github.com/jordaneaster/phoenix/internal/middleware"
	"github.com/jordaneaster/phoenix/internal/repository"
	"github.com/jordaneaster/phoenix/internal/service"
)

// Deps holds the external dependencies that main() must provide: config
// and the root logger.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// Services groups the service pointers the API handler needs.
type Services struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Dashboard *service.DashboardService
	Notifier  *service.Notifier
}

// App holds the fully-wired application.
type App struct {
	Services  Services
	Handler   *api.Handler
	Validator middleware.TokenValidator
}

// New wires the backend client, repositories, services, and API handler
// from the provided deps.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// User-scoped backend client. Calls made with a caller token in the
	// context run under that caller's row-level permissions.
	client := backend.New(cfg.SupabaseURL, cfg.SupabaseAnonKey,
		backend.WithTimeout(cfg.BackendTimeout),
		backend.WithLogger(logger),
	)
	authClient := backend.NewAuthClient(cfg.SupabaseURL, cfg.SupabaseAnonKey,
		backend.WithTimeout(cfg.BackendTimeout),
		backend.WithLogger(logger),
	)

	// === Repositories ===
	userRepo := repository.NewUserRepo(client)
	leadRepo := repository.NewLeadRepo(client)
	prospectRepo := repository.NewProspectRepo(client)
	followUpRepo := repository.NewFollowUpRepo(client)
	worksheetRepo := repository.NewWorksheetRepo(client)
	notificationRepo := repository.NewNotificationRepo(client)
	trainingRepo := repository.NewTrainingRepo(client)

	// === Services ===
	userSvc := service.NewUserService(userRepo, logger)
	authSvc := service.NewAuthService(authClient, userSvc, logger)
	dashboardSvc := service.NewDashboardService(
		userRepo, leadRepo, followUpRepo, worksheetRepo,
		prospectRepo, notificationRepo, trainingRepo, logger,
	)
	notifier := service.NewNotifier(cfg.N8NWebhookURL, cfg.N8NAuthSecret, logger)

	validator, err := newTokenValidator(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("token validator: %w", err)
	}

	handler := api.NewHandler(api.Deps{
		Auth:          authSvc,
		Users:         userSvc,
		Dashboard:     dashboardSvc,
		Notifier:      notifier,
		Leads:         leadRepo,
		Prospects:     prospectRepo,
		FollowUps:     followUpRepo,
		Notifications: notificationRepo,
		Training:      trainingRepo,
		AdminRepos:    adminReposFactory(cfg, logger),
		Timeout:       cfg.BackendTimeout,
		Logger:        logger,
	})

	return &App{
		Services: Services{
			Auth:      authSvc,
			Users:     userSvc,
			Dashboard: dashboardSvc,
			Notifier:  notifier,
		},
		Handler:   handler,
		Validator: validator,
	}, nil
}

// Close releases background resources (in-flight webhook deliveries).
func (a *App) Close() {
	a.Services.Notifier.Close()
}

// adminReposFactory builds the service-role repositories on demand. The
// credentials are resolved per call so a misconfigured deployment reports
// exactly which variables are missing, without any backend round trip.
func adminReposFactory(cfg *config.Config, logger *slog.Logger) func() (*api.AdminRepos, error) {
	return func() (*api.AdminRepos, error) {
		url, key, missing := config.ServiceCredentials()
		if len(missing) > 0 {
			return nil, domain.ErrMissingConfig(missing)
		}
		client := backend.New(url, key,
			backend.WithTimeout(cfg.BackendTimeout),
			backend.WithLogger(logger),
		)
		return &api.AdminRepos{
			Goals:      repository.NewGoalRepo(client),
			Worksheets: repository.NewWorksheetRepo(client),
		}, nil
	}
}

// newTokenValidator picks HS256 against the shared secret when one is
// configured, otherwise the project JWKS endpoint.
func newTokenValidator(ctx context.Context, cfg *config.Config) (middleware.TokenValidator, error) {
	if cfg.Auth.JWTSecret != "" {
		return middleware.NewHS256Validator(cfg.Auth.JWTSecret)
	}
	return middleware.NewJWKSValidator(ctx, cfg.Auth.JWKSURL, cfg.Auth.IssuerURL)
}
