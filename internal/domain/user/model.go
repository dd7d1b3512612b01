package user

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyEmail   = errors.New("user email cannot be empty")
	ErrInvalidEmail = errors.New("user email must contain an @")
)

// User is someone who can RSVP to lessons. A user belongs to at most one
// school; school membership scopes which broadcasts reach them.
type User struct {
	ID       string
	Email    string
	Name     string
	SchoolID string // empty when the user has not picked a school yet
	Admin    bool
	// SubscribeLessonNotifications defaults to true for new users. It gates
	// the unsubscribe affordance in notification emails, not the recipient
	// list of a lesson broadcast: every school member is broadcast to.
	SubscribeLessonNotifications bool
	UnsubscribeToken             string // assigned once, never regenerated
	CreatedAt                    time.Time
}

// New returns a User with defaults applied.
func New(id, email string) User {
	return User{
		ID:                           id,
		Email:                        email,
		SubscribeLessonNotifications: true,
	}
}

// Validate checks if the User has valid data.
// PRE: User struct is populated
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// EnsureUnsubscribeToken assigns an unsubscribe token if the user has
// none. An existing token is never replaced, so links in already-sent
// emails keep working.
// PRE: generate produces a unique opaque string
// POST: UnsubscribeToken is non-empty; returns the effective token
func (u *User) EnsureUnsubscribeToken(generate func() string) string {
	if u.UnsubscribeToken == "" {
		u.UnsubscribeToken = generate()
	}
	return u.UnsubscribeToken
}
