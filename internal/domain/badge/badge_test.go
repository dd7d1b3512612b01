package badge

import "testing"

// TestIsEligible_FirstTimer tests the exact-match predicate.
func TestIsEligible_FirstTimer(t *testing.T) {
	tests := []struct {
		count int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{10, false},
	}

	for _, tc := range tests {
		if got := IsEligible(KindFirstTimer, tc.count); got != tc.want {
			t.Errorf("IsEligible(first-timer, %d): expected %v, got %v", tc.count, tc.want, got)
		}
	}
}

// TestIsEligible_UnknownKind tests that unrecognised kinds never qualify.
func TestIsEligible_UnknownKind(t *testing.T) {
	if IsEligible("marathon-runner", 1) {
		t.Error("expected unknown badge kind to be ineligible")
	}
}
