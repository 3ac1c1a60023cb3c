package service

import (
	"context"
	"time"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// === User Repository Mock ===

type mockUserRepo struct {
	getUserByIDFn   func(ctx context.Context, id string) (*domain.User, error)
	getProfileFn    func(ctx context.Context, id string) (*domain.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	createFn        func(ctx context.Context, u *domain.User) (*domain.User, error)
	listFn          func(ctx context.Context) ([]domain.User, error)
	listByRoleFn    func(ctx context.Context, role string) ([]domain.User, error)
	listActiveFn    func(ctx context.Context) ([]domain.User, error)
	updateProfileFn func(ctx context.Context, id string, fields map[string]any) (*domain.User, error)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, id)
	}
	panic("unexpected call to mockUserRepo.GetUserByID")
}

func (m *mockUserRepo) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, id)
	}
	panic("unexpected call to mockUserRepo.GetProfile")
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	panic("unexpected call to mockUserRepo.GetByEmail")
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	panic("unexpected call to mockUserRepo.Create")
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	panic("unexpected call to mockUserRepo.List")
}

func (m *mockUserRepo) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	if m.listByRoleFn != nil {
		return m.listByRoleFn(ctx, role)
	}
	panic("unexpected call to mockUserRepo.ListByRole")
}

func (m *mockUserRepo) ListActive(ctx context.Context) ([]domain.User, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx)
	}
	panic("unexpected call to mockUserRepo.ListActive")
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*domain.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, id, fields)
	}
	panic("unexpected call to mockUserRepo.UpdateProfile")
}

// === Lead Repository Mock ===

type mockLeadRepo struct {
	countAssignedFn func(ctx context.Context, userID string) (int, error)
	listAssignedFn  func(ctx context.Context, userID string) ([]domain.Lead, error)
}

func (m *mockLeadRepo) CountAssigned(ctx context.Context, userID string) (int, error) {
	if m.countAssignedFn != nil {
		return m.countAssignedFn(ctx, userID)
	}
	panic("unexpected call to mockLeadRepo.CountAssigned")
}

func (m *mockLeadRepo) ListAssigned(ctx context.Context, userID string) ([]domain.Lead, error) {
	if m.listAssignedFn != nil {
		return m.listAssignedFn(ctx, userID)
	}
	panic("unexpected call to mockLeadRepo.ListAssigned")
}

func (m *mockLeadRepo) GetByID(_ context.Context, _ string) (*domain.Lead, error) {
	panic("unexpected call to mockLeadRepo.GetByID")
}

func (m *mockLeadRepo) Create(_ context.Context, _ *domain.Lead) (*domain.Lead, error) {
	panic("unexpected call to mockLeadRepo.Create")
}

func (m *mockLeadRepo) Update(_ context.Context, _ string, _ map[string]any) (*domain.Lead, error) {
	panic("unexpected call to mockLeadRepo.Update")
}

func (m *mockLeadRepo) Delete(_ context.Context, _ string) error {
	panic("unexpected call to mockLeadRepo.Delete")
}

// === Prospect Repository Mock ===

type mockProspectRepo struct {
	getUserProspectsFn func(ctx context.Context, userID string) ([]domain.Prospect, error)
	countAssignedFn    func(ctx context.Context, userID string) (int, error)
}

func (m *mockProspectRepo) GetUserProspects(ctx context.Context, userID string) ([]domain.Prospect, error) {
	if m.getUserProspectsFn != nil {
		return m.getUserProspectsFn(ctx, userID)
	}
	panic("unexpected call to mockProspectRepo.GetUserProspects")
}

func (m *mockProspectRepo) CountAssigned(ctx context.Context, userID string) (int, error) {
	if m.countAssignedFn != nil {
		return m.countAssignedFn(ctx, userID)
	}
	panic("unexpected call to mockProspectRepo.CountAssigned")
}

func (m *mockProspectRepo) ListByStatus(_ context.Context, _ string) ([]domain.Prospect, error) {
	panic("unexpected call to mockProspectRepo.ListByStatus")
}

func (m *mockProspectRepo) ListNeedingFollowup(_ context.Context, _ string) ([]domain.Prospect, error) {
	panic("unexpected call to mockProspectRepo.ListNeedingFollowup")
}

func (m *mockProspectRepo) Search(_ context.Context, _ string) ([]domain.Prospect, error) {
	panic("unexpected call to mockProspectRepo.Search")
}

func (m *mockProspectRepo) GetByID(_ context.Context, _ string) (*domain.Prospect, error) {
	panic("unexpected call to mockProspectRepo.GetByID")
}

func (m *mockProspectRepo) Create(_ context.Context, _ *domain.Prospect) (*domain.Prospect, error) {
	panic("unexpected call to mockProspectRepo.Create")
}

func (m *mockProspectRepo) Update(_ context.Context, _ string, _ map[string]any) (*domain.Prospect, error) {
	panic("unexpected call to mockProspectRepo.Update")
}

func (m *mockProspectRepo) Delete(_ context.Context, _ string) error {
	panic("unexpected call to mockProspectRepo.Delete")
}

// === Follow-Up Repository Mock ===

type mockFollowUpRepo struct {
	getUserFollowUpsFn func(ctx context.Context, userID string) ([]domain.FollowUp, error)
	countPendingFn     func(ctx context.Context, userID string) (int, error)
}

func (m *mockFollowUpRepo) GetUserFollowUps(ctx context.Context, userID string) ([]domain.FollowUp, error) {
	if m.getUserFollowUpsFn != nil {
		return m.getUserFollowUpsFn(ctx, userID)
	}
	panic("unexpected call to mockFollowUpRepo.GetUserFollowUps")
}

func (m *mockFollowUpRepo) CountPending(ctx context.Context, userID string) (int, error) {
	if m.countPendingFn != nil {
		return m.countPendingFn(ctx, userID)
	}
	panic("unexpected call to mockFollowUpRepo.CountPending")
}

func (m *mockFollowUpRepo) ListByProspect(_ context.Context, _ string) ([]domain.FollowUp, error) {
	panic("unexpected call to mockFollowUpRepo.ListByProspect")
}

func (m *mockFollowUpRepo) ListByAssignee(_ context.Context, _ string, _ bool) ([]domain.FollowUp, error) {
	panic("unexpected call to mockFollowUpRepo.ListByAssignee")
}

func (m *mockFollowUpRepo) ListDueBetween(_ context.Context, _ string, _, _ time.Time) ([]domain.FollowUp, error) {
	panic("unexpected call to mockFollowUpRepo.ListDueBetween")
}

func (m *mockFollowUpRepo) ListOverdue(_ context.Context, _ string, _ time.Time) ([]domain.FollowUp, error) {
	panic("unexpected call to mockFollowUpRepo.ListOverdue")
}

func (m *mockFollowUpRepo) Create(_ context.Context, _ *domain.FollowUp) (*domain.FollowUp, error) {
	panic("unexpected call to mockFollowUpRepo.Create")
}

func (m *mockFollowUpRepo) MarkCompleted(_ context.Context, _ []string, _ string) ([]domain.FollowUp, error) {
	panic("unexpected call to mockFollowUpRepo.MarkCompleted")
}

// === Worksheet Repository Mock ===

type mockWorksheetRepo struct {
	getUserWorksheetsFn func(ctx context.Context, userID string) ([]domain.Worksheet, error)
	countCreatedFn      func(ctx context.Context, userID string) (int, error)
}

func (m *mockWorksheetRepo) GetUserWorksheets(ctx context.Context, userID string) ([]domain.Worksheet, error) {
	if m.getUserWorksheetsFn != nil {
		return m.getUserWorksheetsFn(ctx, userID)
	}
	panic("unexpected call to mockWorksheetRepo.GetUserWorksheets")
}

func (m *mockWorksheetRepo) CountCreated(ctx context.Context, userID string) (int, error) {
	if m.countCreatedFn != nil {
		return m.countCreatedFn(ctx, userID)
	}
	panic("unexpected call to mockWorksheetRepo.CountCreated")
}

func (m *mockWorksheetRepo) ListWithProspects(_ context.Context, _, _ int) ([]domain.Worksheet, error) {
	panic("unexpected call to mockWorksheetRepo.ListWithProspects")
}

func (m *mockWorksheetRepo) GetByID(_ context.Context, _ string) (*domain.Worksheet, error) {
	panic("unexpected call to mockWorksheetRepo.GetByID")
}

func (m *mockWorksheetRepo) Create(_ context.Context, _ *domain.Worksheet) (*domain.Worksheet, error) {
	panic("unexpected call to mockWorksheetRepo.Create")
}

func (m *mockWorksheetRepo) Update(_ context.Context, _ string, _ map[string]any) (*domain.Worksheet, error) {
	panic("unexpected call to mockWorksheetRepo.Update")
}

func (m *mockWorksheetRepo) Delete(_ context.Context, _ string) error {
	panic("unexpected call to mockWorksheetRepo.Delete")
}

// === Notification Repository Mock ===

type mockNotificationRepo struct {
	getUserNotificationsFn func(ctx context.Context, userID string) ([]domain.Notification, error)
	countUnreadFn          func(ctx context.Context, userID string) (int, error)
}

func (m *mockNotificationRepo) GetUserNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	if m.getUserNotificationsFn != nil {
		return m.getUserNotificationsFn(ctx, userID)
	}
	panic("unexpected call to mockNotificationRepo.GetUserNotifications")
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	if m.countUnreadFn != nil {
		return m.countUnreadFn(ctx, userID)
	}
	panic("unexpected call to mockNotificationRepo.CountUnread")
}

func (m *mockNotificationRepo) ListForUser(_ context.Context, _ string, _ bool) ([]domain.Notification, error) {
	panic("unexpected call to mockNotificationRepo.ListForUser")
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, _ []string) ([]domain.Notification, error) {
	panic("unexpected call to mockNotificationRepo.MarkRead")
}

// === Training Repository Mock ===

type mockTrainingRepo struct {
	countIncompleteFn func(ctx context.Context, userID string) (int, error)
}

func (m *mockTrainingRepo) CountIncomplete(ctx context.Context, userID string) (int, error) {
	if m.countIncompleteFn != nil {
		return m.countIncompleteFn(ctx, userID)
	}
	panic("unexpected call to mockTrainingRepo.CountIncomplete")
}

func (m *mockTrainingRepo) ListContent(_ context.Context) ([]domain.TrainingItem, error) {
	panic("unexpected call to mockTrainingRepo.ListContent")
}

func (m *mockTrainingRepo) ListProgress(_ context.Context, _ string) ([]domain.TrainingProgress, error) {
	panic("unexpected call to mockTrainingRepo.ListProgress")
}

func (m *mockTrainingRepo) MarkCompleted(_ context.Context, _, _ string) error {
	panic("unexpected call to mockTrainingRepo.MarkCompleted")
}

// === Auth Gateway Mock ===

type mockAuthGateway struct {
	signInFn        func(ctx context.Context, email, password string) (*domain.Session, error)
	signUpFn        func(ctx context.Context, email, password string) (*domain.Session, error)
	signOutFn       func(ctx context.Context, accessToken string) error
	userFromTokenFn func(ctx context.Context, accessToken string) (*domain.Principal, error)
	refreshFn       func(ctx context.Context, refreshToken string) (*domain.Session, error)
}

func (m *mockAuthGateway) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	if m.signInFn != nil {
		return m.signInFn(ctx, email, password)
	}
	panic("unexpected call to mockAuthGateway.SignInWithPassword")
}

func (m *mockAuthGateway) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	if m.signUpFn != nil {
		return m.signUpFn(ctx, email, password)
	}
	panic("unexpected call to mockAuthGateway.SignUp")
}

func (m *mockAuthGateway) SignOut(ctx context.Context, accessToken string) error {
	if m.signOutFn != nil {
		return m.signOutFn(ctx, accessToken)
	}
	panic("unexpected call to mockAuthGateway.SignOut")
}

func (m *mockAuthGateway) UserFromToken(ctx context.Context, accessToken string) (*domain.Principal, error) {
	if m.userFromTokenFn != nil {
		return m.userFromTokenFn(ctx, accessToken)
	}
	panic("unexpected call to mockAuthGateway.UserFromToken")
}

func (m *mockAuthGateway) RefreshSession(ctx context.Context, refreshToken string) (*domain.Session, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx, refreshToken)
	}
	panic("unexpected call to mockAuthGateway.RefreshSession")
}
