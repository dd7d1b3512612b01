package projections

import (
	"context"
	"testing"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/school"
	"lessonhub/internal/domain/venue"
)

func lessonPageFixture() GetLessonPageDeps {
	start := fixedTime.Add(24 * time.Hour)
	return GetLessonPageDeps{
		LessonStore: &mockLessonReader{lessons: []lesson.Lesson{{
			ID:        "l1",
			Title:     "Intro to Pairing",
			Slug:      "intro-to-pairing",
			StartTime: start,
			EndTime:   start.Add(105 * time.Minute),
			VenueID:   "v1",
		}}},
		AttendanceStore: &mockAttendanceReader{
			countsByLesson: map[string]int{"l1": 3},
			attending:      map[string]bool{"u1|l1": true},
		},
		VenueStore: &mockVenueReader{venues: map[string]venue.Venue{
			"v1": {ID: "v1", Name: "Main Hall", SchoolID: "s1"},
		}},
		SchoolStore: &mockSchoolReader{schools: map[string]school.School{
			"s1": {ID: "s1", Name: "Pacific School", Timezone: "America/Los_Angeles"},
		}},
		Now: fixedNow,
	}
}

// TestGetLessonPage tests the assembled lesson detail projection.
func TestGetLessonPage(t *testing.T) {
	deps := lessonPageFixture()

	page, err := GetLessonPage(context.Background(), deps, "intro-to-pairing", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !page.CanRSVP {
		t.Error("expected RSVP open for a lesson starting tomorrow")
	}
	if !page.UserAttending {
		t.Error("expected u1 to be attending")
	}
	if page.AttendeeCount != 3 {
		t.Errorf("expected 3 attendees, got %d", page.AttendeeCount)
	}
	if page.SchoolName != "Pacific School" {
		t.Errorf("unexpected school name %q", page.SchoolName)
	}
}

// TestGetLessonPage_DisplayTimezone tests that local times are shifted
// into the school's zone while the stored instants stay absolute.
func TestGetLessonPage_DisplayTimezone(t *testing.T) {
	deps := lessonPageFixture()

	page, err := GetLessonPage(context.Background(), deps, "intro-to-pairing", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.StartLocal.Location().String() != "America/Los_Angeles" {
		t.Errorf("expected start rendered in America/Los_Angeles, got %s", page.StartLocal.Location())
	}
	if !page.StartLocal.Equal(page.Lesson.StartTime) {
		t.Error("expected local start to be the same instant as the absolute start")
	}
	if page.EndLocal.Location().String() != "America/Los_Angeles" {
		t.Errorf("expected end rendered in America/Los_Angeles, got %s", page.EndLocal.Location())
	}
}

// TestGetLessonPage_Anonymous tests that anonymous visitors skip the
// attendance lookup.
func TestGetLessonPage_Anonymous(t *testing.T) {
	deps := lessonPageFixture()

	page, err := GetLessonPage(context.Background(), deps, "intro-to-pairing", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.UserAttending {
		t.Error("expected anonymous visitor not to be attending")
	}
}

// TestGetLessonPage_ClosedWindow tests CanRSVP=false for an old lesson,
// matching what the RSVP orchestrator would enforce.
func TestGetLessonPage_ClosedWindow(t *testing.T) {
	deps := lessonPageFixture()
	reader := deps.LessonStore.(*mockLessonReader)
	reader.lessons[0].StartTime = fixedTime.Add(-72 * time.Hour)
	reader.lessons[0].EndTime = fixedTime.Add(-70 * time.Hour)

	page, err := GetLessonPage(context.Background(), deps, "intro-to-pairing", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.CanRSVP {
		t.Error("expected RSVP control hidden for a closed window")
	}
}
