// Package notify implements the outbound Notifier port against the LINE
// Messaging API push endpoint. Delivery is best-effort: failures log and
// return false, never an error.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const defaultAPIBase = "https://api.line.me"

// LineNotifier pushes text messages to users through the LINE Messaging API.
type LineNotifier struct {
	apiBase     string
	accessToken string
	client      *http.Client
}

// NewLineNotifier creates a notifier with the given channel access token.
// apiBase may be empty to use the production endpoint; tests point it at a
// local server.
func NewLineNotifier(apiBase string, accessToken string) *LineNotifier {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}

	return &LineNotifier{
		apiBase:     apiBase,
		accessToken: accessToken,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []pushMessage `json:"messages"`
}

type pushMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SendMessageToUser pushes a text message and reports whether the API accepted
// it. The retry key makes accidental re-sends idempotent on the API side.
func (n *LineNotifier) SendMessageToUser(ctx context.Context, userID int64, text string) bool {
	retryKey := uuid.NewString()
	log := slog.With("user_id", userID, "retry_key", retryKey)

	body, err := json.Marshal(pushRequest{
		To:       fmt.Sprintf("%d", userID),
		Messages: []pushMessage{{Type: "text", Text: text}},
	})
	if err != nil {
		log.Error("encode push message", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		n.apiBase+"/v2/bot/message/push", bytes.NewReader(body))
	if err != nil {
		log.Error("build push request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.accessToken)
	req.Header.Set("X-Line-Retry-Key", retryKey)

	resp, err := n.client.Do(req)
	if err != nil {
		log.Warn("push message failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("push message rejected", "status", resp.StatusCode)
		return false
	}

	return true
}
