package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/slug"
)

// LessonStoreForOrchestrator defines the store interface needed by lesson orchestrators.
type LessonStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (lesson.Lesson, error)
	Save(ctx context.Context, l lesson.Lesson) error
}

// --- Create Lesson ---

// CreateLessonInput carries input for the create lesson orchestrator.
type CreateLessonInput struct {
	Title        string
	Description  string
	Summary      string
	StartTime    time.Time
	EndTime      time.Time
	VenueID      string
	TeacherID    string // user ID of the teaching admin
	TweetMessage string
}

// CreateLessonDeps holds dependencies for CreateLesson.
type CreateLessonDeps struct {
	LessonStore LessonStoreForOrchestrator
	GenerateID  func() string
	Now         func() time.Time
}

// ExecuteCreateLesson creates a new lesson. The slug is derived from the
// title exactly once, here at creation; it is never recomputed afterwards,
// even when the title changes. Slug uniqueness across lessons is the
// store's concern.
// PRE: Title must be non-blank; StartTime and VenueID must be set
// POST: Lesson persisted with a generated ID and slug
func ExecuteCreateLesson(ctx context.Context, input CreateLessonInput, deps CreateLessonDeps) (lesson.Lesson, error) {
	s, err := slug.Generate(input.Title)
	if err != nil {
		return lesson.Lesson{}, err
	}

	l := lesson.Lesson{
		ID:           deps.GenerateID(),
		Title:        input.Title,
		Slug:         s,
		Description:  input.Description,
		Summary:      input.Summary,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		VenueID:      input.VenueID,
		TeacherID:    input.TeacherID,
		TweetMessage: input.TweetMessage,
		CreatedAt:    deps.Now(),
	}

	if err := l.Validate(); err != nil {
		return lesson.Lesson{}, err
	}

	if err := deps.LessonStore.Save(ctx, l); err != nil {
		return lesson.Lesson{}, err
	}

	slog.Info("lesson_event", "event", "lesson_created", "lesson_id", l.ID, "slug", l.Slug, "venue_id", l.VenueID)
	return l, nil
}

// --- Edit Lesson ---

// EditLessonInput carries input for the edit lesson orchestrator.
// Title, Description, Summary, TweetMessage and VenueID are only updated
// when non-empty; StartTime and EndTime only when non-zero.
type EditLessonInput struct {
	LessonID     string
	Title        string
	Description  string
	Summary      string
	StartTime    time.Time
	EndTime      time.Time
	VenueID      string
	TweetMessage string
}

// EditLessonDeps holds dependencies for EditLesson.
type EditLessonDeps struct {
	LessonStore LessonStoreForOrchestrator
}

// ExecuteEditLesson updates fields on an existing lesson. The slug stays
// frozen no matter what changes, and the one-shot notification timestamp
// is never touched here.
// PRE: LessonID must be non-empty; lesson must exist
// POST: Lesson fields updated; Slug and NotificationSentAt unchanged
func ExecuteEditLesson(ctx context.Context, input EditLessonInput, deps EditLessonDeps) (lesson.Lesson, error) {
	if input.LessonID == "" {
		return lesson.Lesson{}, errors.New("lesson ID is required")
	}

	l, err := deps.LessonStore.GetByID(ctx, input.LessonID)
	if err != nil {
		return lesson.Lesson{}, err
	}

	if input.Title != "" {
		l.Title = input.Title
	}
	if input.Description != "" {
		l.Description = input.Description
	}
	if input.Summary != "" {
		l.Summary = input.Summary
	}
	if !input.StartTime.IsZero() {
		l.StartTime = input.StartTime
	}
	if !input.EndTime.IsZero() {
		l.EndTime = input.EndTime
	}
	if input.VenueID != "" {
		l.VenueID = input.VenueID
	}
	if input.TweetMessage != "" {
		l.TweetMessage = input.TweetMessage
	}

	if err := l.Validate(); err != nil {
		return lesson.Lesson{}, err
	}

	if err := deps.LessonStore.Save(ctx, l); err != nil {
		return lesson.Lesson{}, err
	}

	slog.Info("lesson_event", "event", "lesson_edited", "lesson_id", l.ID, "slug", l.Slug)
	return l, nil
}
