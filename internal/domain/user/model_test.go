package user

import "testing"

// TestUser_Validate tests User validation rules.
func TestUser_Validate(t *testing.T) {
	valid := New("u1", "ada@example.org")
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid user, got: %v", err)
	}
	if !valid.SubscribeLessonNotifications {
		t.Error("expected new users to be subscribed by default")
	}

	empty := User{ID: "u2"}
	if err := empty.Validate(); err != ErrEmptyEmail {
		t.Fatalf("expected ErrEmptyEmail, got: %v", err)
	}

	noAt := User{ID: "u3", Email: "not-an-address"}
	if err := noAt.Validate(); err != ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got: %v", err)
	}
}

// TestUser_EnsureUnsubscribeToken tests that an existing token is never replaced.
func TestUser_EnsureUnsubscribeToken(t *testing.T) {
	u := New("u1", "ada@example.org")

	calls := 0
	gen := func() string {
		calls++
		return "token-1"
	}

	if got := u.EnsureUnsubscribeToken(gen); got != "token-1" {
		t.Fatalf("expected token-1, got %q", got)
	}
	if got := u.EnsureUnsubscribeToken(gen); got != "token-1" {
		t.Fatalf("expected existing token to be kept, got %q", got)
	}
	if calls != 1 {
		t.Errorf("expected generator called once, got %d", calls)
	}
}
