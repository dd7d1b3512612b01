package projections

import (
	"context"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/school"
	"lessonhub/internal/domain/venue"
)

// LessonReader defines the lesson store queries used by projections.
type LessonReader interface {
	GetBySlug(ctx context.Context, slug string) (lesson.Lesson, error)
	ListFuture(ctx context.Context, now time.Time) ([]lesson.Lesson, error)
	ListPast(ctx context.Context, now time.Time) ([]lesson.Lesson, error)
}

// AttendanceReader defines the attendance store queries used by projections.
type AttendanceReader interface {
	CountByUserID(ctx context.Context, userID string) (int, error)
	CountByLessonID(ctx context.Context, lessonID string) (int, error)
	ExistsByUserAndLesson(ctx context.Context, userID, lessonID string) (bool, error)
}

// VenueReader defines the venue lookup used by projections.
type VenueReader interface {
	GetByID(ctx context.Context, id string) (venue.Venue, error)
}

// SchoolReader defines the school lookup used by projections.
type SchoolReader interface {
	GetByID(ctx context.Context, id string) (school.School, error)
}
