package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lessonhub/internal/domain/attendance"
	"lessonhub/internal/domain/lesson"
)

// RSVPAttendanceStore defines the attendance store interface needed by RSVP orchestrators.
// Save must absorb a duplicate (user, lesson) pair as a no-op; the
// uniqueness invariant lives in the storage layer.
type RSVPAttendanceStore interface {
	Save(ctx context.Context, a attendance.Attendance) error
	DeleteByUserAndLesson(ctx context.Context, userID, lessonID string) error
}

// RSVPLessonStore defines the lesson lookup needed by RSVP orchestrators.
type RSVPLessonStore interface {
	GetByID(ctx context.Context, id string) (lesson.Lesson, error)
}

// RSVPInput carries input for the RSVP and un-RSVP orchestrators.
type RSVPInput struct {
	UserID   string
	LessonID string
}

// RSVPDeps holds dependencies for RSVP and un-RSVP.
type RSVPDeps struct {
	LessonStore     RSVPLessonStore
	AttendanceStore RSVPAttendanceStore
	GenerateID      func() string
	Now             func() time.Time
}

// ExecuteRSVP records a user's intent to attend a lesson. The exact same
// window predicate that decides whether the RSVP control is rendered also
// gates the action here, so a stale page cannot sneak a late RSVP through.
// A duplicate RSVP leaves exactly one attendance row.
// PRE: UserID and LessonID are non-empty; lesson must exist
// POST: At most one attendance row exists for (user, lesson)
func ExecuteRSVP(ctx context.Context, input RSVPInput, deps RSVPDeps) error {
	if input.UserID == "" || input.LessonID == "" {
		return errors.New("user ID and lesson ID are required")
	}

	l, err := deps.LessonStore.GetByID(ctx, input.LessonID)
	if err != nil {
		return err
	}
	if !l.CanRSVP(deps.Now()) {
		return lesson.ErrRSVPClosed
	}

	a := attendance.Attendance{
		ID:        deps.GenerateID(),
		UserID:    input.UserID,
		LessonID:  input.LessonID,
		CreatedAt: deps.Now(),
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if err := deps.AttendanceStore.Save(ctx, a); err != nil {
		return err
	}

	slog.Info("rsvp_event", "event", "user_rsvped", "user_id", input.UserID, "lesson_id", input.LessonID)
	return nil
}

// ExecuteUnRSVP removes a user's RSVP. Removing an RSVP that does not
// exist is a no-op.
// PRE: UserID and LessonID are non-empty; lesson must exist
// POST: No attendance row exists for (user, lesson)
func ExecuteUnRSVP(ctx context.Context, input RSVPInput, deps RSVPDeps) error {
	if input.UserID == "" || input.LessonID == "" {
		return errors.New("user ID and lesson ID are required")
	}

	l, err := deps.LessonStore.GetByID(ctx, input.LessonID)
	if err != nil {
		return err
	}
	if !l.CanRSVP(deps.Now()) {
		return lesson.ErrRSVPClosed
	}

	if err := deps.AttendanceStore.DeleteByUserAndLesson(ctx, input.UserID, input.LessonID); err != nil {
		return err
	}

	slog.Info("rsvp_event", "event", "user_unrsvped", "user_id", input.UserID, "lesson_id", input.LessonID)
	return nil
}
