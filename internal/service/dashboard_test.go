package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordaneaster/phoenix/internal/domain"
)

func newDashboardService(
	users *mockUserRepo,
	leads *mockLeadRepo,
	followUps *mockFollowUpRepo,
	worksheets *mockWorksheetRepo,
	prospects *mockProspectRepo,
	notifications *mockNotificationRepo,
	training *mockTrainingRepo,
) *DashboardService {
	return NewDashboardService(users, leads, followUps, worksheets, prospects, notifications, training, nil)
}

// happyMocks returns a full set of mocks where every fast path succeeds.
func happyMocks() (*mockUserRepo, *mockLeadRepo, *mockFollowUpRepo, *mockWorksheetRepo, *mockProspectRepo, *mockNotificationRepo, *mockTrainingRepo) {
	users := &mockUserRepo{
		getUserByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "u@example.com", Role: domain.RoleSales, Status: domain.StatusActive}, nil
		},
	}
	leads := &mockLeadRepo{
		countAssignedFn: func(_ context.Context, _ string) (int, error) { return 4, nil },
	}
	followUps := &mockFollowUpRepo{
		getUserFollowUpsFn: func(_ context.Context, _ string) ([]domain.FollowUp, error) {
			return []domain.FollowUp{{ID: "f1"}, {ID: "f2"}}, nil
		},
	}
	worksheets := &mockWorksheetRepo{
		getUserWorksheetsFn: func(_ context.Context, _ string) ([]domain.Worksheet, error) {
			return []domain.Worksheet{{ID: "w1"}}, nil
		},
	}
	prospects := &mockProspectRepo{
		getUserProspectsFn: func(_ context.Context, _ string) ([]domain.Prospect, error) {
			return []domain.Prospect{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}, nil
		},
	}
	notifications := &mockNotificationRepo{
		getUserNotificationsFn: func(_ context.Context, _ string) ([]domain.Notification, error) {
			return []domain.Notification{{ID: "n1"}}, nil
		},
	}
	training := &mockTrainingRepo{
		countIncompleteFn: func(_ context.Context, _ string) (int, error) { return 5, nil },
	}
	return users, leads, followUps, worksheets, prospects, notifications, training
}

func TestDashboard_AllFastPathsSucceed(t *testing.T) {
	svc := newDashboardService(happyMocks())

	data := svc.GetDashboardData(context.Background(), "u1")
	require.NotNil(t, data)
	require.NotNil(t, data.Profile)
	assert.Equal(t, "u1", data.Profile.ID)
	assert.Equal(t, 4, data.LeadsCount)
	assert.Equal(t, 2, data.FollowUpsCount)
	assert.Equal(t, 1, data.WorksheetsCount)
	assert.Equal(t, 3, data.ProspectsCount)
	assert.Equal(t, 1, data.NotificationsCount)
	assert.Equal(t, 5, data.TrainingCount)
}

// One metric failing both paths must not disturb any other field.
func TestDashboard_MetricFailureIsIndependent(t *testing.T) {
	boom := errors.New("backend down")
	users, leads, followUps, worksheets, prospects, notifications, training := happyMocks()
	followUps.getUserFollowUpsFn = func(_ context.Context, _ string) ([]domain.FollowUp, error) {
		return nil, boom
	}
	followUps.countPendingFn = func(_ context.Context, _ string) (int, error) {
		return 0, boom
	}

	svc := newDashboardService(users, leads, followUps, worksheets, prospects, notifications, training)
	data := svc.GetDashboardData(context.Background(), "u1")

	assert.Equal(t, 0, data.FollowUpsCount)
	assert.Equal(t, 4, data.LeadsCount)
	assert.Equal(t, 1, data.WorksheetsCount)
	assert.Equal(t, 3, data.ProspectsCount)
	assert.Equal(t, 1, data.NotificationsCount)
	assert.Equal(t, 5, data.TrainingCount)
	require.NotNil(t, data.Profile)
}

// Even with every lookup failing the aggregation settles to its defaults.
func TestDashboard_TotalFailureYieldsDefaults(t *testing.T) {
	boom := errors.New("backend down")
	users := &mockUserRepo{
		getUserByIDFn: func(_ context.Context, _ string) (*domain.User, error) { return nil, boom },
		getProfileFn:  func(_ context.Context, _ string) (*domain.User, error) { return nil, boom },
	}
	leads := &mockLeadRepo{
		countAssignedFn: func(_ context.Context, _ string) (int, error) { return 0, boom },
	}
	followUps := &mockFollowUpRepo{
		getUserFollowUpsFn: func(_ context.Context, _ string) ([]domain.FollowUp, error) { return nil, boom },
		countPendingFn:     func(_ context.Context, _ string) (int, error) { return 0, boom },
	}
	worksheets := &mockWorksheetRepo{
		getUserWorksheetsFn: func(_ context.Context, _ string) ([]domain.Worksheet, error) { return nil, boom },
		countCreatedFn:      func(_ context.Context, _ string) (int, error) { return 0, boom },
	}
	prospects := &mockProspectRepo{
		getUserProspectsFn: func(_ context.Context, _ string) ([]domain.Prospect, error) { return nil, boom },
		countAssignedFn:    func(_ context.Context, _ string) (int, error) { return 0, boom },
	}
	notifications := &mockNotificationRepo{
		getUserNotificationsFn: func(_ context.Context, _ string) ([]domain.Notification, error) { return nil, boom },
		countUnreadFn:          func(_ context.Context, _ string) (int, error) { return 0, boom },
	}
	training := &mockTrainingRepo{
		countIncompleteFn: func(_ context.Context, _ string) (int, error) { return 0, boom },
	}

	svc := newDashboardService(users, leads, followUps, worksheets, prospects, notifications, training)
	data := svc.GetDashboardData(context.Background(), "u1")

	require.NotNil(t, data)
	assert.Nil(t, data.Profile)
	assert.Zero(t, data.LeadsCount)
	assert.Zero(t, data.FollowUpsCount)
	assert.Zero(t, data.WorksheetsCount)
	assert.Zero(t, data.ProspectsCount)
	assert.Zero(t, data.NotificationsCount)
	assert.Zero(t, data.TrainingCount)
}

// The fallback count runs only after the fast path has failed.
func TestDashboard_FallbackRunsAfterFastPath(t *testing.T) {
	var fastCalls, fallbackCalls atomic.Int32

	users, leads, followUps, worksheets, prospects, notifications, training := happyMocks()
	prospects.getUserProspectsFn = func(_ context.Context, _ string) ([]domain.Prospect, error) {
		fastCalls.Add(1)
		return nil, errors.New("function get_user_prospects does not exist")
	}
	prospects.countAssignedFn = func(_ context.Context, _ string) (int, error) {
		require.Equal(t, int32(1), fastCalls.Load(), "fallback ran before the fast path")
		fallbackCalls.Add(1)
		return 7, nil
	}

	svc := newDashboardService(users, leads, followUps, worksheets, prospects, notifications, training)
	data := svc.GetDashboardData(context.Background(), "u1")

	assert.Equal(t, 7, data.ProspectsCount)
	assert.Equal(t, int32(1), fastCalls.Load())
	assert.Equal(t, int32(1), fallbackCalls.Load())
}

// The notifications procedure returns every notification for the user;
// the dashboard metric counts only the unread subset.
func TestDashboard_NotificationsCountsUnreadOnly(t *testing.T) {
	users, leads, followUps, worksheets, prospects, notifications, training := happyMocks()
	notifications.getUserNotificationsFn = func(_ context.Context, _ string) ([]domain.Notification, error) {
		return []domain.Notification{
			{ID: "n1", Read: false},
			{ID: "n2", Read: true},
			{ID: "n3", Read: false},
			{ID: "n4", Read: true},
			{ID: "n5", Read: true},
		}, nil
	}

	svc := newDashboardService(users, leads, followUps, worksheets, prospects, notifications, training)
	data := svc.GetDashboardData(context.Background(), "u1")

	assert.Equal(t, 2, data.NotificationsCount)
}

// Mixed scenario: three prospects via the procedure, one pending follow-up
// via the fallback, zero worksheets after both paths fail, three unread of
// five notifications.
func TestDashboard_MixedOutcomes(t *testing.T) {
	boom := errors.New("backend down")
	users, leads, followUps, worksheets, prospects, notifications, training := happyMocks()

	prospects.getUserProspectsFn = func(_ context.Context, _ string) ([]domain.Prospect, error) {
		return []domain.Prospect{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}, nil
	}
	followUps.getUserFollowUpsFn = func(_ context.Context, _ string) ([]domain.FollowUp, error) {
		return nil, boom
	}
	followUps.countPendingFn = func(_ context.Context, _ string) (int, error) { return 1, nil }
	worksheets.getUserWorksheetsFn = func(_ context.Context, _ string) ([]domain.Worksheet, error) {
		return nil, boom
	}
	worksheets.countCreatedFn = func(_ context.Context, _ string) (int, error) { return 0, boom }
	notifications.getUserNotificationsFn = func(_ context.Context, _ string) ([]domain.Notification, error) {
		return []domain.Notification{
			{ID: "n1"}, {ID: "n2"}, {ID: "n3"},
			{ID: "n4", Read: true}, {ID: "n5", Read: true},
		}, nil
	}

	svc := newDashboardService(users, leads, followUps, worksheets, prospects, notifications, training)
	data := svc.GetDashboardData(context.Background(), "u1")

	assert.Equal(t, 3, data.ProspectsCount)
	assert.Equal(t, 1, data.FollowUpsCount)
	assert.Equal(t, 0, data.WorksheetsCount)
	assert.Equal(t, 3, data.NotificationsCount)
}

// The profile falls back to the direct table lookup when the procedure is
// missing.
func TestDashboard_ProfileFallback(t *testing.T) {
	users, leads, followUps, worksheets, prospects, notifications, training := happyMocks()
	users.getUserByIDFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, errors.New("function get_user_by_id does not exist")
	}
	users.getProfileFn = func(_ context.Context, id string) (*domain.User, error) {
		return &domain.User{ID: id, Email: "fallback@example.com"}, nil
	}

	svc := newDashboardService(users, leads, followUps, worksheets, prospects, notifications, training)
	data := svc.GetDashboardData(context.Background(), "u1")

	require.NotNil(t, data.Profile)
	assert.Equal(t, "fallback@example.com", data.Profile.Email)
}
