package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// WebhookPoster publishes announcements by POSTing JSON to a configured
// webhook URL. Any service accepting a {"text": ...} payload works.
type WebhookPoster struct {
	url    string
	client *http.Client
}

// NewWebhookPoster creates a poster targeting the given webhook URL.
// PRE: url is a valid HTTP(S) endpoint
// POST: Returns a ready-to-use poster
func NewWebhookPoster(url string) *WebhookPoster {
	return &WebhookPoster{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Post sends the announcement text to the webhook.
// PRE: text is non-empty
// POST: Returns nil only when the webhook accepted the payload
func (p *WebhookPoster) Post(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("encode social payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build social request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		slog.Error("social_post_failed", "error", err)
		return fmt.Errorf("social post failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("social_post_rejected", "status", resp.StatusCode)
		return fmt.Errorf("social webhook returned status %d", resp.StatusCode)
	}

	slog.Info("social_posted", "status", resp.StatusCode)
	return nil
}
