package projections

import (
	"context"
	"time"

	"lessonhub/internal/domain/lesson"
)

// GetPastLessonsDeps holds dependencies for GetPastLessons.
type GetPastLessonsDeps struct {
	LessonStore LessonReader
	Now         func() time.Time
}

// GetPastLessons returns a bounded random sample of fully elapsed lessons
// for the past-lessons widget. With no past lessons the sample is a single
// placeholder entry, so callers always render a non-empty list.
// PRE: maxCount <= 0 means the default sample size
// POST: Returns min(maxCount, past) lessons, or one placeholder
func GetPastLessons(ctx context.Context, deps GetPastLessonsDeps, maxCount int) ([]lesson.Lesson, error) {
	past, err := deps.LessonStore.ListPast(ctx, deps.Now())
	if err != nil {
		return nil, err
	}
	return lesson.PastSample(past, maxCount), nil
}
