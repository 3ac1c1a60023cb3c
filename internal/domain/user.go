package domain

import (
	"regexp"
	"strings"
	"time"
)

// Roles assignable to application users. Managers see team views; admins
// additionally see configuration surfaces.
const (
	RoleSales   = "sales"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// User account statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User is the application-level record keyed by Principal.ID. It must exist
// for a principal to be considered onboarded; it is created lazily on first
// login when absent.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Role        string     `json:"role"`
	Department  string     `json:"department,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at,omitzero"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// IsActive reports whether the account may sign in.
func (u *User) IsActive() bool { return u.Status == StatusActive }

// IsManager reports whether the user may access manager/team views.
func (u *User) IsManager() bool { return u.Role == RoleManager || u.Role == RoleAdmin }

// NewProvisionedUser builds the default user record created on first login.
// The display name is derived from the email local-part.
func NewProvisionedUser(p Principal) *User {
	return &User{
		ID:       p.ID,
		Email:    p.Email,
		FullName: emailLocalPart(p.Email),
		Role:     RoleSales,
		Status:   StatusActive,
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
