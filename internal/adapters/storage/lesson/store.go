package lesson

import (
	"context"
	"time"

	domain "lessonhub/internal/domain/lesson"
)

// Store persists Lesson state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Lesson, error)
	GetBySlug(ctx context.Context, slug string) (domain.Lesson, error)
	Save(ctx context.Context, value domain.Lesson) error
	Delete(ctx context.Context, id string) error
	ListFuture(ctx context.Context, now time.Time) ([]domain.Lesson, error)
	ListPast(ctx context.Context, now time.Time) ([]domain.Lesson, error)
	// MarkNotified sets notification_sent_at only when it is currently
	// unset, as one atomic conditional update. Returns
	// domain.ErrAlreadyDispatched when the flag was already claimed.
	MarkNotified(ctx context.Context, id string, at time.Time) error
}
