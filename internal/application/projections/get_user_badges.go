package projections

import (
	"context"

	"lessonhub/internal/domain/badge"
)

// GetUserBadgesDeps holds dependencies for GetUserBadges.
type GetUserBadgesDeps struct {
	AttendanceStore AttendanceReader
}

// GetUserBadges evaluates every badge kind against the user's current
// attendance count. The count is fetched once and fed to each predicate,
// never re-derived per kind.
// PRE: userID is non-empty
// POST: Returns the earned badge kinds in display order
func GetUserBadges(ctx context.Context, deps GetUserBadgesDeps, userID string) ([]string, error) {
	count, err := deps.AttendanceStore.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var earned []string
	for _, kind := range badge.Kinds {
		if badge.IsEligible(kind, count) {
			earned = append(earned, kind)
		}
	}
	return earned, nil
}
