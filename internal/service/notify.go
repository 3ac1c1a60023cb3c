package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Notifier delivers events to an external automation webhook. Delivery is
// strictly best-effort: tasks are spawned, failures are logged, and nothing
// ever propagates to the operation that triggered the notification.
type Notifier struct {
	webhookURL string
	authSecret string
	httpc      *http.Client
	logger     *slog.Logger
	wg         sync.WaitGroup
}

// AuthEvent is the payload relayed to the webhook.
type AuthEvent struct {
	Event     string `json:"event"`
	EventType string `json:"event_type,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	Timestamp string `json:"timestamp"`
}

func NewNotifier(webhookURL, authSecret string, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		webhookURL: webhookURL,
		authSecret: authSecret,
		httpc:      &http.Client{Timeout: 10 * time.Second},
		logger:     logger.With("component", "notifier"),
	}
}

// Enabled reports whether a webhook is configured at all.
func (n *Notifier) Enabled() bool { return n.webhookURL != "" }

// NotifySignup fires the post-signup event. It requires both the webhook
// URL and the shared secret; with either missing the event is dropped.
func (n *Notifier) NotifySignup(userID, email string) {
	if n.webhookURL == "" || n.authSecret == "" {
		n.logger.Debug("signup webhook not configured, skipping")
		return
	}
	n.Notify(AuthEvent{Event: "signup", UserID: userID, UserEmail: email})
}

// Notify spawns a delivery task for the event and returns immediately.
func (n *Notifier) Notify(event AuthEvent) {
	if !n.Enabled() {
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := n.deliver(ctx, event); err != nil {
			n.logger.Warn("webhook notification failed", "event", event.Event, "error", err)
		}
	}()
}

// Relay delivers the event synchronously. Used by the relay endpoint, which
// still treats a failed delivery as non-fatal.
func (n *Notifier) Relay(ctx context.Context, event AuthEvent) error {
	if !n.Enabled() {
		return nil
	}
	return n.deliver(ctx, event)
}

// Close waits for in-flight deliveries to finish.
func (n *Notifier) Close() {
	n.wg.Wait()
}

func (n *Notifier) deliver(ctx context.Context, event AuthEvent) error {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.authSecret != "" {
		req.Header.Set("Authorization", "Bearer "+n.authSecret)
	}

	resp, err := n.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		n.logger.Warn("webhook returned non-success status", "status", resp.StatusCode)
	}
	return nil
}
