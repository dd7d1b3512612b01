package projections

import (
	"context"
	"errors"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/school"
	"lessonhub/internal/domain/venue"
)

// Shared map-backed mocks for projection tests.

var fixedTime = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

type mockLessonReader struct {
	lessons []lesson.Lesson
}

func (m *mockLessonReader) GetBySlug(_ context.Context, slug string) (lesson.Lesson, error) {
	for _, l := range m.lessons {
		if l.Slug == slug {
			return l, nil
		}
	}
	return lesson.Lesson{}, errors.New("lesson not found")
}

func (m *mockLessonReader) ListFuture(_ context.Context, now time.Time) ([]lesson.Lesson, error) {
	var out []lesson.Lesson
	for _, l := range m.lessons {
		if l.StartTime.After(now) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockLessonReader) ListPast(_ context.Context, now time.Time) ([]lesson.Lesson, error) {
	var out []lesson.Lesson
	for _, l := range m.lessons {
		if l.Elapsed(now) {
			out = append(out, l)
		}
	}
	return out, nil
}

type mockAttendanceReader struct {
	countsByUser   map[string]int
	countsByLesson map[string]int
	attending      map[string]bool // keyed by userID|lessonID
}

func (m *mockAttendanceReader) CountByUserID(_ context.Context, userID string) (int, error) {
	return m.countsByUser[userID], nil
}

func (m *mockAttendanceReader) CountByLessonID(_ context.Context, lessonID string) (int, error) {
	return m.countsByLesson[lessonID], nil
}

func (m *mockAttendanceReader) ExistsByUserAndLesson(_ context.Context, userID, lessonID string) (bool, error) {
	return m.attending[userID+"|"+lessonID], nil
}

type mockVenueReader struct {
	venues map[string]venue.Venue
}

func (m *mockVenueReader) GetByID(_ context.Context, id string) (venue.Venue, error) {
	v, ok := m.venues[id]
	if !ok {
		return venue.Venue{}, errors.New("venue not found")
	}
	return v, nil
}

type mockSchoolReader struct {
	schools map[string]school.School
}

func (m *mockSchoolReader) GetByID(_ context.Context, id string) (school.School, error) {
	s, ok := m.schools[id]
	if !ok {
		return school.School{}, errors.New("school not found")
	}
	return s, nil
}
