package social

import (
	"context"
	"log/slog"
)

// NoopPoster logs announcements without publishing them. Used in
// development and when no webhook is configured.
type NoopPoster struct{}

// NewNoopPoster creates a new NoopPoster.
func NewNoopPoster() *NoopPoster {
	return &NoopPoster{}
}

// Post logs the announcement but does not publish it.
func (p *NoopPoster) Post(_ context.Context, text string) error {
	slog.Info("noop_social_post", "text", text)
	return nil
}
