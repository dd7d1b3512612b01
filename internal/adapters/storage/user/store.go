package user

import (
	"context"

	domain "lessonhub/internal/domain/user"
)

// Store persists User state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByUnsubscribeToken(ctx context.Context, token string) (domain.User, error)
	Save(ctx context.Context, value domain.User) error
	ListBySchoolID(ctx context.Context, schoolID string) ([]domain.User, error)
}
