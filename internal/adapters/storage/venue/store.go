package venue

import (
	"context"

	domain "lessonhub/internal/domain/venue"
)

// Store persists Venue state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Venue, error)
	Save(ctx context.Context, value domain.Venue) error
	ListBySchoolID(ctx context.Context, schoolID string) ([]domain.Venue, error)
}
