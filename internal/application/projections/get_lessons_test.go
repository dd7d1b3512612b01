package projections

import (
	"context"
	"testing"
	"time"

	"lessonhub/internal/domain/lesson"
)

// TestGetUpcomingLessons tests filtering and ordering of the listing.
func TestGetUpcomingLessons(t *testing.T) {
	deps := GetUpcomingLessonsDeps{
		LessonStore: &mockLessonReader{lessons: []lesson.Lesson{
			{ID: "later", StartTime: fixedTime.Add(96 * time.Hour)},
			{ID: "gone", StartTime: fixedTime.Add(-24 * time.Hour), EndTime: fixedTime.Add(-22 * time.Hour)},
			{ID: "soon", StartTime: fixedTime.Add(2 * time.Hour)},
		}},
		Now: fixedNow,
	}

	got, err := GetUpcomingLessons(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming lessons, got %d", len(got))
	}
	if got[0].ID != "soon" || got[1].ID != "later" {
		t.Errorf("expected [soon later], got [%s %s]", got[0].ID, got[1].ID)
	}
}

// TestGetPastLessons tests the bounded sample over elapsed lessons.
func TestGetPastLessons(t *testing.T) {
	var lessons []lesson.Lesson
	for i := 0; i < 6; i++ {
		start := fixedTime.Add(time.Duration(-24*(i+2)) * time.Hour)
		lessons = append(lessons, lesson.Lesson{
			ID:        string(rune('a' + i)),
			StartTime: start,
			EndTime:   start.Add(2 * time.Hour),
		})
	}
	deps := GetPastLessonsDeps{
		LessonStore: &mockLessonReader{lessons: lessons},
		Now:         fixedNow,
	}

	got, err := GetPastLessons(context.Background(), deps, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected a sample of 4, got %d", len(got))
	}
	for _, l := range got {
		if l.IsPlaceholder {
			t.Error("expected no placeholder when past lessons exist")
		}
	}
}

// TestGetPastLessons_Placeholder tests the empty-history fallback.
func TestGetPastLessons_Placeholder(t *testing.T) {
	deps := GetPastLessonsDeps{
		LessonStore: &mockLessonReader{},
		Now:         fixedNow,
	}

	got, err := GetPastLessons(context.Background(), deps, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || !got[0].IsPlaceholder {
		t.Fatalf("expected exactly one placeholder, got %v", got)
	}
}
