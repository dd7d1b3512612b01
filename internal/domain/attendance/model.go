package attendance

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrMissingUser   = errors.New("attendance must be associated with a user")
	ErrMissingLesson = errors.New("attendance must be associated with a lesson")
)

// Attendance records a user's RSVP to a lesson. Existence means
// "RSVP'd"; deletion means "un-RSVP". At most one row may exist per
// (user, lesson) pair — the storage layer enforces the uniqueness.
type Attendance struct {
	ID        string
	UserID    string
	LessonID  string
	CreatedAt time.Time
}

// Validate checks if the Attendance has valid data.
// PRE: Attendance struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (a *Attendance) Validate() error {
	if a.UserID == "" {
		return ErrMissingUser
	}
	if a.LessonID == "" {
		return ErrMissingLesson
	}
	return nil
}
