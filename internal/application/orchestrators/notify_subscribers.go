package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/user"
	"lessonhub/internal/domain/venue"
)

// MessageSender delivers one lesson notification to one recipient.
type MessageSender interface {
	Send(ctx context.Context, lessonID, recipientID, adminID string) error
}

// SocialPoster publishes the lesson announcement text to a social channel.
type SocialPoster interface {
	Post(ctx context.Context, text string) error
}

// NotifyLessonStore defines the lesson store interface needed by the dispatcher.
type NotifyLessonStore interface {
	GetByID(ctx context.Context, id string) (lesson.Lesson, error)
	// MarkNotified sets the lesson's notification timestamp only when it is
	// currently unset, as a single atomic conditional update. It returns
	// lesson.ErrAlreadyDispatched when another dispatch already claimed it.
	MarkNotified(ctx context.Context, id string, at time.Time) error
}

// NotifyVenueStore defines the venue lookup needed to scope the broadcast.
type NotifyVenueStore interface {
	GetByID(ctx context.Context, id string) (venue.Venue, error)
}

// NotifyUserStore defines the user listing needed to build the recipient set.
type NotifyUserStore interface {
	ListBySchoolID(ctx context.Context, schoolID string) ([]user.User, error)
}

// NotifySubscribersInput carries input for the notify subscribers orchestrator.
type NotifySubscribersInput struct {
	LessonID string
	AdminID  string // initiating admin; excluded from the recipient list
	// LessonURL is the lesson's canonical public URL, supplied by the
	// caller. It is substituted for {{url}} in the social post text.
	LessonURL string
}

// NotifySubscribersDeps holds dependencies for NotifySubscribers.
type NotifySubscribersDeps struct {
	LessonStore NotifyLessonStore
	VenueStore  NotifyVenueStore
	UserStore   NotifyUserStore
	Mailer      MessageSender
	Poster      SocialPoster
	Now         func() time.Time
}

// DispatchResult reports the outcome of a broadcast.
type DispatchResult struct {
	SucceededCount     int
	FailedRecipientIDs []string
	SocialPosted       bool
}

// ExecuteNotifySubscribers runs the one-time broadcast for a lesson: a
// social post plus one message per user of the lesson's school, excluding
// the initiating admin. Recipients are every user in the school — the
// per-user subscription flag does not filter this broadcast.
//
// The one-shot timestamp is claimed up front via the store's atomic
// conditional update, so two concurrent dispatch attempts yield exactly
// one broadcast and one ErrAlreadyDispatched. Individual send failures are
// collected, never fatal, and never roll the timestamp back: the contract
// is attempted-once, not perfectly-delivered.
// PRE: LessonID and AdminID are non-empty; lesson must exist
// POST: NotificationSentAt is set exactly once across all attempts
func ExecuteNotifySubscribers(ctx context.Context, input NotifySubscribersInput, deps NotifySubscribersDeps) (DispatchResult, error) {
	if input.LessonID == "" {
		return DispatchResult{}, errors.New("lesson ID is required")
	}
	if input.AdminID == "" {
		return DispatchResult{}, errors.New("initiating admin ID is required")
	}

	l, err := deps.LessonStore.GetByID(ctx, input.LessonID)
	if err != nil {
		return DispatchResult{}, err
	}
	if l.NotificationSent() {
		return DispatchResult{}, lesson.ErrAlreadyDispatched
	}

	v, err := deps.VenueStore.GetByID(ctx, l.VenueID)
	if err != nil {
		return DispatchResult{}, err
	}

	recipients, err := deps.UserStore.ListBySchoolID(ctx, v.SchoolID)
	if err != nil {
		return DispatchResult{}, err
	}

	// Claim the one-shot flag before any side effect goes out. Losing this
	// race means another request is already broadcasting.
	if err := deps.LessonStore.MarkNotified(ctx, l.ID, deps.Now()); err != nil {
		return DispatchResult{}, err
	}

	var result DispatchResult

	text := l.ComposeSocialPost(input.LessonURL)
	if err := deps.Poster.Post(ctx, text); err != nil {
		slog.Warn("notify_event", "event", "social_post_failed", "lesson_id", l.ID, "error", err.Error())
	} else {
		result.SocialPosted = true
	}

	for _, r := range recipients {
		if r.ID == input.AdminID {
			continue
		}
		if err := deps.Mailer.Send(ctx, l.ID, r.ID, input.AdminID); err != nil {
			slog.Warn("notify_event", "event", "recipient_send_failed", "lesson_id", l.ID, "recipient_id", r.ID, "error", err.Error())
			result.FailedRecipientIDs = append(result.FailedRecipientIDs, r.ID)
			continue
		}
		result.SucceededCount++
	}

	slog.Info("notify_event", "event", "lesson_broadcast",
		"lesson_id", l.ID,
		"admin_id", input.AdminID,
		"succeeded", result.SucceededCount,
		"failed", len(result.FailedRecipientIDs),
		"social_posted", result.SocialPosted)
	return result, nil
}
