package repository

import (
	"context"
	"time"

	"github.com/jordaneaster/phoenix/internal/backend"
	"github.com/jordaneaster/phoenix/internal/domain"
)

type NotificationRepo struct {
	c *backend.Client
}

func NewNotificationRepo(c *backend.Client) *NotificationRepo {
	return &NotificationRepo{c: c}
}

var _ domain.NotificationRepository = (*NotificationRepo)(nil)

// GetUserNotifications is the stored-procedure fast path. Note its filtering
// semantics differ from the fallback: the procedure returns ALL of the
// user's notifications, read and unread, so callers counting unread must
// filter client-side.
func (r *NotificationRepo) GetUserNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	raw, err := r.c.RPC(ctx, "get_user_notifications", map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	return backend.DecodeRows[domain.Notification](raw)
}

// CountUnread is the fallback count of notifications with read = false.
func (r *NotificationRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	return r.c.From("notifications").
		Eq("user_id", userID).
		Eq("read", false).
		Count(ctx)
}

func (r *NotificationRepo) ListForUser(ctx context.Context, userID string, includeRead bool) ([]domain.Notification, error) {
	q := r.c.From("notifications").Eq("user_id", userID).Order("created_at", false)
	if !includeRead {
		q = q.Eq("read", false)
	}
	var notifications []domain.Notification
	err := q.Do(ctx, &notifications)
	return notifications, err
}

// MarkRead flags the given notifications read, stamping the read time.
func (r *NotificationRepo) MarkRead(ctx context.Context, ids []string) ([]domain.Notification, error) {
	if len(ids) == 0 {
		return nil, domain.ErrValidation("no notification ids given")
	}
	var updated []domain.Notification
	err := r.c.From("notifications").In("id", ids).Update(ctx, map[string]any{
		"read":    true,
		"read_at": time.Now().UTC().Format(time.RFC3339),
	}, &updated)
	return updated, err
}
