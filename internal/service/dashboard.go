// Package service implements the CRM's business logic over the repository
// ports.
package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// DashboardService computes the per-user dashboard aggregation: the profile
// plus six independent count metrics. Each lookup follows the same pattern —
// stored-procedure fast path where one exists, direct filtered count as
// fallback, documented default on total failure. The backend schema grew
// its procedures incrementally, so which resources have a fast path (and
// with what filtering semantics) is uneven; the uniform degrade-to-default
// pattern is what keeps the dashboard rendering through that drift.
type DashboardService struct {
	users         domain.UserRepository
	leads         domain.LeadRepository
	followUps     domain.FollowUpRepository
	worksheets    domain.WorksheetRepository
	prospects     domain.ProspectRepository
	notifications domain.NotificationRepository
	training      domain.TrainingRepository
	logger        *slog.Logger
}

func NewDashboardService(
	users domain.UserRepository,
	leads domain.LeadRepository,
	followUps domain.FollowUpRepository,
	worksheets domain.WorksheetRepository,
	prospects domain.ProspectRepository,
	notifications domain.NotificationRepository,
	training domain.TrainingRepository,
	logger *slog.Logger,
) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		users:         users,
		leads:         leads,
		followUps:     followUps,
		worksheets:    worksheets,
		prospects:     prospects,
		notifications: notifications,
		training:      training,
		logger:        logger.With("component", "dashboard"),
	}
}

// GetDashboardData computes all seven lookups concurrently and joins once
// every one has settled. It never fails: a metric whose fast path and
// fallback both error contributes its default (0, or nil for the profile)
// and the rest of the page renders regardless.
func (s *DashboardService) GetDashboardData(ctx context.Context, principalID string) *domain.DashboardData {
	data := &domain.DashboardData{}

	// Every task swallows its own error, so the group never cancels early;
	// Wait is purely a join.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Profile = s.profile(gctx, principalID)
		return nil
	})
	g.Go(func() error {
		data.LeadsCount = s.leadsCount(gctx, principalID)
		return nil
	})
	g.Go(func() error {
		data.FollowUpsCount = s.followUpsCount(gctx, principalID)
		return nil
	})
	g.Go(func() error {
		data.WorksheetsCount = s.worksheetsCount(gctx, principalID)
		return nil
	})
	g.Go(func() error {
		data.ProspectsCount = s.prospectsCount(gctx, principalID)
		return nil
	})
	g.Go(func() error {
		data.NotificationsCount = s.notificationsCount(gctx, principalID)
		return nil
	})
	g.Go(func() error {
		data.TrainingCount = s.trainingCount(gctx, principalID)
		return nil
	})
	_ = g.Wait()

	return data
}

// profile resolves the user record: procedure lookup first, direct table
// lookup as fallback, nil when both fail.
func (s *DashboardService) profile(ctx context.Context, principalID string) *domain.User {
	u, err := s.users.GetUserByID(ctx, principalID)
	if err == nil {
		return u
	}
	s.logger.Warn("profile fast path failed", "user", principalID, "error", err)

	u, err = s.users.GetProfile(ctx, principalID)
	if err != nil {
		s.logger.Error("profile fallback failed", "user", principalID, "error", err)
		return nil
	}
	return u
}

// leadsCount has no fast-path procedure; it is a direct filtered count.
func (s *DashboardService) leadsCount(ctx context.Context, principalID string) int {
	count, err := s.leads.CountAssigned(ctx, principalID)
	if err != nil {
		s.logger.Warn("leads count failed", "user", principalID, "error", err)
		return 0
	}
	return count
}

func (s *DashboardService) followUpsCount(ctx context.Context, principalID string) int {
	rows, err := s.followUps.GetUserFollowUps(ctx, principalID)
	if err == nil {
		return len(rows)
	}
	s.logger.Warn("follow-ups fast path failed", "user", principalID, "error", err)

	count, err := s.followUps.CountPending(ctx, principalID)
	if err != nil {
		s.logger.Warn("follow-ups count fallback failed", "user", principalID, "error", err)
		return 0
	}
	return count
}

func (s *DashboardService) worksheetsCount(ctx context.Context, principalID string) int {
	rows, err := s.worksheets.GetUserWorksheets(ctx, principalID)
	if err == nil {
		return len(rows)
	}
	s.logger.Warn("worksheets fast path failed", "user", principalID, "error", err)

	count, err := s.worksheets.CountCreated(ctx, principalID)
	if err != nil {
		s.logger.Warn("worksheets count fallback failed", "user", principalID, "error", err)
		return 0
	}
	return count
}

func (s *DashboardService) prospectsCount(ctx context.Context, principalID string) int {
	rows, err := s.prospects.GetUserProspects(ctx, principalID)
	if err == nil {
		return len(rows)
	}
	s.logger.Warn("prospects fast path failed", "user", principalID, "error", err)

	count, err := s.prospects.CountAssigned(ctx, principalID)
	if err != nil {
		s.logger.Warn("prospects count fallback failed", "user", principalID, "error", err)
		return 0
	}
	return count
}

// notificationsCount counts unread. The fast-path procedure returns all of
// the user's notifications, read and unread, so the unread subset is
// filtered here; the fallback count filters on the backend.
func (s *DashboardService) notificationsCount(ctx context.Context, principalID string) int {
	rows, err := s.notifications.GetUserNotifications(ctx, principalID)
	if err == nil {
		unread := 0
		for _, n := range rows {
			if !n.Read {
				unread++
			}
		}
		return unread
	}
	s.logger.Warn("notifications fast path failed", "user", principalID, "error", err)

	count, err := s.notifications.CountUnread(ctx, principalID)
	if err != nil {
		s.logger.Warn("notifications count fallback failed", "user", principalID, "error", err)
		return 0
	}
	return count
}

// trainingCount is the anti-join count of items the user has not completed.
// There is no procedure for it.
func (s *DashboardService) trainingCount(ctx context.Context, principalID string) int {
	count, err := s.training.CountIncomplete(ctx, principalID)
	if err != nil {
		s.logger.Warn("training count failed", "user", principalID, "error", err)
		return 0
	}
	return count
}
