package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/school"
	"lessonhub/internal/domain/user"
	"lessonhub/internal/domain/venue"
)

type mockLessonStore struct {
	lessons map[string]lesson.Lesson
}

func (m *mockLessonStore) GetByID(_ context.Context, id string) (lesson.Lesson, error) {
	l, ok := m.lessons[id]
	if !ok {
		return lesson.Lesson{}, errors.New("lesson not found")
	}
	return l, nil
}

type mockUserStore struct {
	users map[string]user.User
}

func (m *mockUserStore) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, errors.New("user not found")
	}
	return u, nil
}

type mockVenueStore struct {
	venues map[string]venue.Venue
}

func (m *mockVenueStore) GetByID(_ context.Context, id string) (venue.Venue, error) {
	v, ok := m.venues[id]
	if !ok {
		return venue.Venue{}, errors.New("venue not found")
	}
	return v, nil
}

type mockSchoolStore struct {
	schools map[string]school.School
}

func (m *mockSchoolStore) GetByID(_ context.Context, id string) (school.School, error) {
	s, ok := m.schools[id]
	if !ok {
		return school.School{}, errors.New("school not found")
	}
	return s, nil
}

type captureSender struct {
	requests []SendRequest
	fail     bool
}

func (c *captureSender) Send(_ context.Context, req SendRequest) (SendResult, error) {
	if c.fail {
		return SendResult{}, errors.New("provider down")
	}
	c.requests = append(c.requests, req)
	return SendResult{MessageID: "msg-1", SentAt: time.Now()}, nil
}

func testMailer(sender Sender) *LessonMailer {
	lessons := &mockLessonStore{lessons: map[string]lesson.Lesson{
		"l1": {
			ID:          "l1",
			Title:       "Roda Basics",
			Slug:        "roda-basics",
			Description: "Learn the *ginga* and basic escapes.",
			StartTime:   time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC),
			VenueID:     "v1",
		},
	}}
	users := &mockUserStore{users: map[string]user.User{
		"u1": {ID: "u1", Email: "student@test.com", UnsubscribeToken: "tok-123"},
		"admin": {ID: "admin", Email: "admin@test.com", Admin: true},
	}}
	venues := &mockVenueStore{venues: map[string]venue.Venue{
		"v1": {ID: "v1", Name: "Main Hall", SchoolID: "s1"},
	}}
	schools := &mockSchoolStore{schools: map[string]school.School{
		"s1": {ID: "s1", Name: "Capoeira Lisboa", Timezone: "Europe/Lisbon"},
	}}
	return NewLessonMailer(lessons, users, venues, schools, sender, "https://lessonhub.example")
}

func TestLessonMailer_Send(t *testing.T) {
	sender := &captureSender{}
	mailer := testMailer(sender)

	if err := mailer.Send(context.Background(), "l1", "u1", "admin"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(sender.requests) != 1 {
		t.Fatalf("got %d requests, want 1", len(sender.requests))
	}

	req := sender.requests[0]
	if len(req.To) != 1 || req.To[0] != "student@test.com" {
		t.Errorf("To = %v, want [student@test.com]", req.To)
	}
	if req.ReplyTo != "admin@test.com" {
		t.Errorf("ReplyTo = %q, want admin@test.com", req.ReplyTo)
	}
	if !strings.Contains(req.Subject, "Roda Basics") {
		t.Errorf("Subject = %q, want lesson title included", req.Subject)
	}
	if !strings.Contains(req.HTML, "https://lessonhub.example/lessons/roda-basics") {
		t.Errorf("body missing lesson URL:\n%s", req.HTML)
	}
	if !strings.Contains(req.HTML, "https://lessonhub.example/unsubscribe/tok-123") {
		t.Errorf("body missing unsubscribe link:\n%s", req.HTML)
	}
	// Markdown description rendered to HTML.
	if !strings.Contains(req.HTML, "<em>ginga</em>") {
		t.Errorf("body missing rendered markdown:\n%s", req.HTML)
	}
	// Lisbon is UTC+1 in September, so 18:00 UTC renders as 19:00.
	if !strings.Contains(req.HTML, "19:00") {
		t.Errorf("body missing school-local start time:\n%s", req.HTML)
	}
}

func TestLessonMailer_Send_NoUnsubscribeTokenOmitsLink(t *testing.T) {
	sender := &captureSender{}
	mailer := testMailer(sender)
	users := mailer.users.(*mockUserStore)
	users.users["u2"] = user.User{ID: "u2", Email: "fresh@test.com"}

	if err := mailer.Send(context.Background(), "l1", "u2", "admin"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if strings.Contains(sender.requests[0].HTML, "/unsubscribe/") {
		t.Errorf("body has unsubscribe link for tokenless user:\n%s", sender.requests[0].HTML)
	}
}

func TestLessonMailer_Send_UnknownLesson(t *testing.T) {
	mailer := testMailer(&captureSender{})
	if err := mailer.Send(context.Background(), "missing", "u1", "admin"); err == nil {
		t.Error("expected error for unknown lesson, got nil")
	}
}

func TestLessonMailer_Send_ProviderFailure(t *testing.T) {
	mailer := testMailer(&captureSender{fail: true})
	if err := mailer.Send(context.Background(), "l1", "u1", "admin"); err == nil {
		t.Error("expected error when provider fails, got nil")
	}
}
