package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"lessonhub/internal/domain/user"
)

// UnsubscribeUserStore defines the user store interface needed by the
// unsubscribe orchestrators.
type UnsubscribeUserStore interface {
	GetByID(ctx context.Context, id string) (user.User, error)
	GetByUnsubscribeToken(ctx context.Context, token string) (user.User, error)
	Save(ctx context.Context, u user.User) error
}

// UnsubscribeDeps holds dependencies for the unsubscribe orchestrators.
type UnsubscribeDeps struct {
	UserStore  UnsubscribeUserStore
	GenerateID func() string
}

// ExecuteEnsureUnsubscribeToken makes sure a user holds an unsubscribe
// token, minting one only when none exists. Links in already-sent emails
// keep working because an existing token is never replaced.
// PRE: userID identifies an existing user
// POST: The user has a non-empty token; returns the effective token
func ExecuteEnsureUnsubscribeToken(ctx context.Context, userID string, deps UnsubscribeDeps) (string, error) {
	if userID == "" {
		return "", errors.New("user ID is required")
	}

	u, err := deps.UserStore.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if u.UnsubscribeToken != "" {
		return u.UnsubscribeToken, nil
	}

	token := u.EnsureUnsubscribeToken(deps.GenerateID)
	if err := deps.UserStore.Save(ctx, u); err != nil {
		return "", err
	}
	return token, nil
}

// ExecuteUnsubscribe turns off lesson notifications for the user holding
// the given token. Repeating the action is a no-op, so a link can be
// clicked any number of times.
// PRE: token is non-empty
// POST: The matching user has SubscribeLessonNotifications = false
func ExecuteUnsubscribe(ctx context.Context, token string, deps UnsubscribeDeps) error {
	if token == "" {
		return errors.New("unsubscribe token is required")
	}

	u, err := deps.UserStore.GetByUnsubscribeToken(ctx, token)
	if err != nil {
		return err
	}

	if !u.SubscribeLessonNotifications {
		return nil
	}

	u.SubscribeLessonNotifications = false
	if err := deps.UserStore.Save(ctx, u); err != nil {
		return err
	}

	slog.Info("user_event", "event", "user_unsubscribed", "user_id", u.ID)
	return nil
}
