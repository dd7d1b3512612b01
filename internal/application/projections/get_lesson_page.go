package projections

import (
	"context"
	"time"

	"lessonhub/internal/domain/lesson"
)

// LessonPage carries everything the lesson detail view needs in one read.
type LessonPage struct {
	Lesson        lesson.Lesson
	CanRSVP       bool // drives whether the RSVP control is rendered at all
	UserAttending bool
	AttendeeCount int
	SchoolName    string
	// StartLocal/EndLocal are the lesson instants shifted into the school's
	// display timezone. Display only; every decision above runs on the
	// absolute instants.
	StartLocal time.Time
	EndLocal   time.Time
}

// GetLessonPageDeps holds dependencies for GetLessonPage.
type GetLessonPageDeps struct {
	LessonStore     LessonReader
	AttendanceStore AttendanceReader
	VenueStore      VenueReader
	SchoolStore     SchoolReader
	Now             func() time.Time
}

// GetLessonPage assembles the lesson detail projection. CanRSVP here is
// the same predicate the RSVP orchestrators enforce, so a hidden control
// always means a rejected action and vice versa.
// PRE: slug is non-empty; userID may be empty for anonymous visitors
// POST: Returns the page projection or the store's lookup error
func GetLessonPage(ctx context.Context, deps GetLessonPageDeps, slug, userID string) (LessonPage, error) {
	l, err := deps.LessonStore.GetBySlug(ctx, slug)
	if err != nil {
		return LessonPage{}, err
	}

	v, err := deps.VenueStore.GetByID(ctx, l.VenueID)
	if err != nil {
		return LessonPage{}, err
	}
	s, err := deps.SchoolStore.GetByID(ctx, v.SchoolID)
	if err != nil {
		return LessonPage{}, err
	}

	count, err := deps.AttendanceStore.CountByLessonID(ctx, l.ID)
	if err != nil {
		return LessonPage{}, err
	}

	attending := false
	if userID != "" {
		attending, err = deps.AttendanceStore.ExistsByUserAndLesson(ctx, userID, l.ID)
		if err != nil {
			return LessonPage{}, err
		}
	}

	loc := s.Location()
	page := LessonPage{
		Lesson:        l,
		CanRSVP:       l.CanRSVP(deps.Now()),
		UserAttending: attending,
		AttendeeCount: count,
		SchoolName:    s.Name,
		StartLocal:    l.StartTime.In(loc),
	}
	if !l.EndTime.IsZero() {
		page.EndLocal = l.EndTime.In(loc)
	}
	return page, nil
}
