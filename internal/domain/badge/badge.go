package badge

// Badge kinds. Each kind is a pure predicate over a user's attendance
// count; adding a kind means adding a case below, never re-deriving
// attendance data.
const (
	// KindFirstTimer recognises attending exactly one class. It is an
	// exact match, not a threshold: repeat attendees are deliberately
	// excluded along with non-attendees.
	KindFirstTimer = "first-timer"
)

// Kinds lists every badge kind, in display order.
var Kinds = []string{KindFirstTimer}

// IsEligible reports whether an attendance count qualifies for a badge kind.
// Pure, no I/O; unknown kinds are never eligible.
func IsEligible(kind string, attendanceCount int) bool {
	switch kind {
	case KindFirstTimer:
		return attendanceCount == 1
	default:
		return false
	}
}
