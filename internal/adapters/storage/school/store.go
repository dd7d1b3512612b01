package school

import (
	"context"

	domain "lessonhub/internal/domain/school"
)

// Store persists School state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.School, error)
	GetBySlug(ctx context.Context, slug string) (domain.School, error)
	Save(ctx context.Context, value domain.School) error
	List(ctx context.Context) ([]domain.School, error)
}
