// Package api provides the HTTP handlers for the CRM REST API.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jordaneaster/phoenix/internal/domain"
	"github.com/jordaneaster/phoenix/internal/middleware"
	"github.com/jordaneaster/phoenix/internal/service"
)

// Handler bundles the services and repositories behind the REST API.
type Handler struct {
	auth          *service.AuthService
	users         *service.UserService
	dashboard     *service.DashboardService
	notifier      *service.Notifier
	leads         domain.LeadRepository
	prospects     domain.ProspectRepository
	followUps     domain.FollowUpRepository
	notifications domain.NotificationRepository
	training      domain.TrainingRepository

	// adminRepos builds the service-role repositories for routes that
	// bypass row-level security. It is resolved per request so credential
	// changes take effect without a restart, and so a misconfigured server
	// can answer with the exact list of missing variables.
	adminRepos func() (*AdminRepos, error)

	backendTimeout time.Duration
	logger         *slog.Logger
}

// AdminRepos holds the repositories backed by the service-role key.
type AdminRepos struct {
	Goals      domain.GoalRepository
	Worksheets domain.WorksheetRepository
}

// Deps carries everything a Handler needs.
type Deps struct {
	Auth          *service.AuthService
	Users         *service.UserService
	Dashboard     *service.DashboardService
	Notifier      *service.Notifier
	Leads         domain.LeadRepository
	Prospects     domain.ProspectRepository
	FollowUps     domain.FollowUpRepository
	Notifications domain.NotificationRepository
	Training      domain.TrainingRepository
	AdminRepos    func() (*AdminRepos, error)
	Timeout       time.Duration
	Logger        *slog.Logger
}

// NewHandler creates a Handler from its dependencies.
func NewHandler(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		auth:           d.Auth,
		users:          d.Users,
		dashboard:      d.Dashboard,
		notifier:       d.Notifier,
		leads:          d.Leads,
		prospects:      d.Prospects,
		followUps:      d.FollowUps,
		notifications:  d.Notifications,
		training:       d.Training,
		adminRepos:     d.AdminRepos,
		backendTimeout: d.Timeout,
		logger:         logger.With("component", "api"),
	}
}

// Routes mounts every API route onto a new chi router. Routes that operate
// on the caller's own data sit behind the session middleware; the auth
// endpoints and the service-role admin routes do not.
func (h *Handler) Routes(validator middleware.TokenValidator) chi.Router {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)
		r.Post("/auth/logout", h.Logout)
		r.Get("/auth/logout", h.Logout)
		r.Post("/auth/post-signup", h.PostSignup)
		r.Post("/auth/signup", h.SignUp)
		r.Post("/notify-n8n", h.NotifyN8N)

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", h.ListGoals)
			r.Post("/", h.CreateGoal)
		})
		r.Route("/worksheets", func(r chi.Router) {
			r.Get("/", h.ListWorksheets)
			r.Post("/", h.CreateWorksheet)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetWorksheet)
				r.Patch("/", h.UpdateWorksheet)
				r.Delete("/", h.DeleteWorksheet)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(validator))

			r.Get("/dashboard", h.Dashboard)

			r.Get("/profile", h.GetProfile)
			r.Post("/profile", h.EnsureProfile)
			r.Patch("/profile", h.UpdateProfile)

			r.Get("/team", h.Team)

			r.Route("/leads", func(r chi.Router) {
				r.Get("/", h.ListLeads)
				r.Post("/", h.CreateLead)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.GetLead)
					r.Patch("/", h.UpdateLead)
					r.Delete("/", h.DeleteLead)
				})
			})

			r.Route("/prospects", func(r chi.Router) {
				r.Get("/", h.ListProspects)
				r.Post("/", h.CreateProspect)
				r.Get("/search", h.SearchProspects)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.GetProspect)
					r.Patch("/", h.UpdateProspect)
					r.Delete("/", h.DeleteProspect)
					r.Get("/follow-ups", h.ListProspectFollowUps)
				})
			})

			r.Route("/follow-ups", func(r chi.Router) {
				r.Get("/", h.ListFollowUps)
				r.Post("/", h.CreateFollowUp)
				r.Post("/complete", h.CompleteFollowUps)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.ListNotifications)
				r.Post("/read", h.MarkNotificationsRead)
			})

			r.Route("/training", func(r chi.Router) {
				r.Get("/", h.ListTrainingContent)
				r.Get("/progress", h.ListTrainingProgress)
				r.Post("/{id}/complete", h.CompleteTraining)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

// principal pulls the authenticated principal out of the request context.
// The session middleware guarantees it is present on protected routes.
func principal(r *http.Request) domain.Principal {
	p, _ := domain.PrincipalFromContext(r.Context())
	return p
}
