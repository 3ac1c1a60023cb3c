package domain

import (
	"context"
	"time"
)

// UserRepository provides lookups and mutations on application user records.
// GetUserByID is the stored-procedure fast path; GetProfile is the direct
// table lookup used as its fallback.
type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetProfile(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role string) ([]User, error)
	ListActive(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]any) (*User, error)
}

// LeadRepository provides operations on leads. Leads have no stored-procedure
// fast path; counts go straight to a head-only filtered select.
type LeadRepository interface {
	CountAssigned(ctx context.Context, userID string) (int, error)
	ListAssigned(ctx context.Context, userID string) ([]Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
	Create(ctx context.Context, l *Lead) (*Lead, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Lead, error)
	Delete(ctx context.Context, id string) error
}

// ProspectRepository provides operations on prospects.
type ProspectRepository interface {
	GetUserProspects(ctx context.Context, userID string) ([]Prospect, error) // rpc fast path
	CountAssigned(ctx context.Context, userID string) (int, error)
	ListByStatus(ctx context.Context, status string) ([]Prospect, error)
	ListNeedingFollowup(ctx context.Context, userID string) ([]Prospect, error)
	Search(ctx context.Context, term string) ([]Prospect, error)
	GetByID(ctx context.Context, id string) (*Prospect, error)
	Create(ctx context.Context, p *Prospect) (*Prospect, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Prospect, error)
	Delete(ctx context.Context, id string) error
}

// FollowUpRepository provides operations on follow-up tasks.
type FollowUpRepository interface {
	GetUserFollowUps(ctx context.Context, userID string) ([]FollowUp, error) // rpc fast path
	CountPending(ctx context.Context, userID string) (int, error)
	ListByProspect(ctx context.Context, prospectID string) ([]FollowUp, error)
	ListByAssignee(ctx context.Context, userID string, includeCompleted bool) ([]FollowUp, error)
	ListDueBetween(ctx context.Context, userID string, from, to time.Time) ([]FollowUp, error)
	ListOverdue(ctx context.Context, userID string, before time.Time) ([]FollowUp, error)
	Create(ctx context.Context, f *FollowUp) (*FollowUp, error)
	MarkCompleted(ctx context.Context, ids []string, notes string) ([]FollowUp, error)
}

// WorksheetRepository provides operations on worksheets.
type WorksheetRepository interface {
	GetUserWorksheets(ctx context.Context, userID string) ([]Worksheet, error) // rpc fast path
	CountCreated(ctx context.Context, userID string) (int, error)
	ListWithProspects(ctx context.Context, limit, offset int) ([]Worksheet, error)
	GetByID(ctx context.Context, id string) (*Worksheet, error)
	Create(ctx context.Context, w *Worksheet) (*Worksheet, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Worksheet, error)
	Delete(ctx context.Context, id string) error
}

// NotificationRepository provides operations on notifications.
type NotificationRepository interface {
	GetUserNotifications(ctx context.Context, userID string) ([]Notification, error) // rpc fast path
	CountUnread(ctx context.Context, userID string) (int, error)
	ListForUser(ctx context.Context, userID string, includeRead bool) ([]Notification, error)
	MarkRead(ctx context.Context, ids []string) ([]Notification, error)
}

// TrainingRepository provides operations on training content and progress.
// CountIncomplete is the anti-join count: items whose id is absent from the
// user's progress rows. It has no stored-procedure fast path.
type TrainingRepository interface {
	CountIncomplete(ctx context.Context, userID string) (int, error)
	ListContent(ctx context.Context) ([]TrainingItem, error)
	ListProgress(ctx context.Context, userID string) ([]TrainingProgress, error)
	MarkCompleted(ctx context.Context, userID, trainingID string) error
}

// GoalRepository provides operations on accountability goals.
type GoalRepository interface {
	List(ctx context.Context) ([]Goal, error)
	Create(ctx context.Context, g *Goal) (*Goal, error)
}

// AuthGateway abstracts the hosted backend's authentication endpoints.
type AuthGateway interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
	UserFromToken(ctx context.Context, accessToken string) (*Principal, error)
	RefreshSession(ctx context.Context, refreshToken string) (*Session, error)
}
