package notify

import (
	"context"
	"log/slog"
)

// NoopNotifier is used when no messaging credentials are configured. It logs
// the message that would have been sent and reports success so local setups
// behave like production minus the delivery.
type NoopNotifier struct{}

// NewNoopNotifier creates a notifier that only logs.
func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

// SendMessageToUser logs the message and reports success.
func (n *NoopNotifier) SendMessageToUser(_ context.Context, userID int64, text string) bool {
	slog.Info("notification suppressed, no messaging credentials",
		"user_id", userID, "text", text)
	return true
}
