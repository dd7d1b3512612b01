package attendance

import (
	"context"

	domain "lessonhub/internal/domain/attendance"
)

// Store persists Attendance state. Save absorbs a duplicate
// (user, lesson) pair as a no-op; the first row always wins.
type Store interface {
	Save(ctx context.Context, value domain.Attendance) error
	DeleteByUserAndLesson(ctx context.Context, userID, lessonID string) error
	CountByUserID(ctx context.Context, userID string) (int, error)
	CountByLessonID(ctx context.Context, lessonID string) (int, error)
	ExistsByUserAndLesson(ctx context.Context, userID, lessonID string) (bool, error)
	ListByLessonID(ctx context.Context, lessonID string) ([]domain.Attendance, error)
}
