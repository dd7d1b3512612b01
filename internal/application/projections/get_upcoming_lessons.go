package projections

import (
	"context"
	"time"

	"lessonhub/internal/domain/lesson"
)

// GetUpcomingLessonsDeps holds dependencies for GetUpcomingLessons.
type GetUpcomingLessonsDeps struct {
	LessonStore LessonReader
	Now         func() time.Time
}

// GetUpcomingLessons returns lessons starting after now, ordered soonest
// first, for the upcoming-lessons listing.
// PRE: none
// POST: Returns only future lessons, ascending by start time
func GetUpcomingLessons(ctx context.Context, deps GetUpcomingLessonsDeps) ([]lesson.Lesson, error) {
	now := deps.Now()
	fetched, err := deps.LessonStore.ListFuture(ctx, now)
	if err != nil {
		return nil, err
	}
	// Re-apply the pure filter so ordering and the strictly-after rule do
	// not depend on the store's query.
	return lesson.Future(fetched, now), nil
}
