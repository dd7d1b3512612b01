package orchestrators

import (
	"context"
	"errors"
	"testing"

	"lessonhub/internal/domain/user"
)

type mockTokenUserStore struct {
	users map[string]user.User
}

func (m *mockTokenUserStore) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, errors.New("user not found")
	}
	return u, nil
}

func (m *mockTokenUserStore) GetByUnsubscribeToken(_ context.Context, token string) (user.User, error) {
	for _, u := range m.users {
		if u.UnsubscribeToken == token {
			return u, nil
		}
	}
	return user.User{}, errors.New("user not found")
}

func (m *mockTokenUserStore) Save(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}

func TestExecuteEnsureUnsubscribeToken_MintsOnce(t *testing.T) {
	store := &mockTokenUserStore{users: map[string]user.User{
		"u1": {ID: "u1", Email: "u1@test.com", SubscribeLessonNotifications: true},
	}}
	deps := UnsubscribeDeps{UserStore: store, GenerateID: fixedID}

	token, err := ExecuteEnsureUnsubscribeToken(context.Background(), "u1", deps)
	if err != nil {
		t.Fatalf("ExecuteEnsureUnsubscribeToken failed: %v", err)
	}
	if token != "test-id-001" {
		t.Errorf("token = %q, want test-id-001", token)
	}
	if store.users["u1"].UnsubscribeToken != "test-id-001" {
		t.Errorf("token not persisted: %q", store.users["u1"].UnsubscribeToken)
	}

	// Second call returns the existing token without replacing it.
	deps.GenerateID = func() string { return "different-id" }
	token, err = ExecuteEnsureUnsubscribeToken(context.Background(), "u1", deps)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if token != "test-id-001" {
		t.Errorf("existing token replaced: %q", token)
	}
}

func TestExecuteEnsureUnsubscribeToken_UnknownUser(t *testing.T) {
	deps := UnsubscribeDeps{
		UserStore:  &mockTokenUserStore{users: map[string]user.User{}},
		GenerateID: fixedID,
	}
	if _, err := ExecuteEnsureUnsubscribeToken(context.Background(), "missing", deps); err == nil {
		t.Error("expected error for unknown user, got nil")
	}
}

func TestExecuteUnsubscribe(t *testing.T) {
	store := &mockTokenUserStore{users: map[string]user.User{
		"u1": {ID: "u1", Email: "u1@test.com", SubscribeLessonNotifications: true, UnsubscribeToken: "tok-1"},
	}}
	deps := UnsubscribeDeps{UserStore: store, GenerateID: fixedID}

	if err := ExecuteUnsubscribe(context.Background(), "tok-1", deps); err != nil {
		t.Fatalf("ExecuteUnsubscribe failed: %v", err)
	}
	if store.users["u1"].SubscribeLessonNotifications {
		t.Error("user still subscribed after unsubscribe")
	}

	// Clicking the link again is a no-op.
	if err := ExecuteUnsubscribe(context.Background(), "tok-1", deps); err != nil {
		t.Fatalf("repeat unsubscribe failed: %v", err)
	}
	if store.users["u1"].SubscribeLessonNotifications {
		t.Error("repeat unsubscribe re-subscribed the user")
	}
}

func TestExecuteUnsubscribe_UnknownToken(t *testing.T) {
	deps := UnsubscribeDeps{
		UserStore:  &mockTokenUserStore{users: map[string]user.User{}},
		GenerateID: fixedID,
	}
	if err := ExecuteUnsubscribe(context.Background(), "bogus", deps); err == nil {
		t.Error("expected error for unknown token, got nil")
	}
}
