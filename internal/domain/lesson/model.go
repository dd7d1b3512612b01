package lesson

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"
)

// DefaultSampleSize is the number of past lessons shown in the past-lessons widget.
const DefaultSampleSize = 4

// URLToken is the literal placeholder replaced with the lesson's public URL
// when composing the social post text.
const URLToken = "{{url}}"

// Domain errors
var (
	ErrEmptyTitle        = errors.New("lesson title cannot be empty")
	ErrMissingStartTime  = errors.New("lesson start time is required")
	ErrEndBeforeStart    = errors.New("lesson end time cannot be before start time")
	ErrMissingVenue      = errors.New("lesson must be held at a venue")
	ErrAlreadyDispatched = errors.New("lesson notification has already been sent")
	ErrRSVPClosed        = errors.New("the RSVP window for this lesson has closed")
)

// Lesson represents a scheduled in-person class at a school's venue.
// Start and end times are absolute instants; the school's timezone is used
// for display only, never for decisions.
type Lesson struct {
	ID                 string
	Title              string
	Slug               string // assigned once at creation, immutable afterwards
	Description        string // Markdown content
	Summary            string
	StartTime          time.Time
	EndTime            time.Time
	VenueID            string
	TeacherID          string // user ID of the teaching admin
	TweetMessage       string // optional custom social post; may contain {{url}}
	NotificationSentAt time.Time // zero until the one-shot broadcast runs; never cleared
	IsPlaceholder      bool      // sentinel for "no past lessons yet"; never persisted
	CreatedAt          time.Time
}

// Validate checks if the Lesson has valid data.
// PRE: Lesson struct is populated; placeholders are never validated or persisted
// POST: Returns nil if valid, error otherwise
func (l *Lesson) Validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return ErrEmptyTitle
	}
	if l.StartTime.IsZero() {
		return ErrMissingStartTime
	}
	if !l.EndTime.IsZero() && l.EndTime.Before(l.StartTime) {
		return ErrEndBeforeStart
	}
	if l.VenueID == "" {
		return ErrMissingVenue
	}
	return nil
}

// CanRSVP reports whether RSVP actions are currently permitted.
// The window stays open through the end of the calendar day after the
// lesson's start date, evaluated in UTC: a lesson starting today can be
// RSVP'd all of today and all of tomorrow, closing at the start of the day
// after tomorrow. The cutoff is keyed to the start date, not the end date;
// lessons spanning midnight await product confirmation on which day counts.
// The same predicate gates both rendering the RSVP control and accepting
// the action, so the UI and the engine cannot diverge.
func (l *Lesson) CanRSVP(now time.Time) bool {
	startOfDay := l.StartTime.UTC().Truncate(24 * time.Hour)
	return now.Before(startOfDay.Add(48 * time.Hour))
}

// NotificationSent reports whether the one-shot broadcast has already run.
func (l *Lesson) NotificationSent() bool {
	return !l.NotificationSentAt.IsZero()
}

// Elapsed reports whether the lesson's window has fully passed.
// PRE: StartTime is set
// POST: Returns true once the end time (or start time, when no end is set) is behind now
func (l *Lesson) Elapsed(now time.Time) bool {
	if !l.EndTime.IsZero() {
		return l.EndTime.Before(now)
	}
	return l.StartTime.Before(now)
}

// ComposeSocialPost builds the outbound social post text for the lesson.
// A custom TweetMessage has every {{url}} token replaced with the lesson's
// canonical public URL; without one a default text naming the lesson is used.
func (l *Lesson) ComposeSocialPost(url string) string {
	if strings.TrimSpace(l.TweetMessage) != "" {
		return strings.ReplaceAll(l.TweetMessage, URLToken, url)
	}
	return fmt.Sprintf("New lesson: %s %s", l.Title, url)
}

// Future filters to lessons starting strictly after now, ordered ascending
// by start time. Pure; the input slice is not modified.
func Future(lessons []Lesson, now time.Time) []Lesson {
	out := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		if l.StartTime.After(now) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

// PastSample selects a random subset of past lessons for the past-lessons
// widget. When no past lessons exist it returns a single placeholder entry
// so callers always render a non-empty list without special-casing.
// PRE: past contains only lessons whose window has elapsed
// POST: Returns min(maxCount, len(past)) distinct lessons, or one placeholder
func PastSample(past []Lesson, maxCount int) []Lesson {
	if maxCount <= 0 {
		maxCount = DefaultSampleSize
	}
	if len(past) == 0 {
		return []Lesson{{IsPlaceholder: true}}
	}
	order := rand.Perm(len(past))
	if len(order) > maxCount {
		order = order[:maxCount]
	}
	sample := make([]Lesson, 0, len(order))
	for _, i := range order {
		sample = append(sample, past[i])
	}
	return sample
}
