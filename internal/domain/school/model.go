package school

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrEmptyName       = errors.New("school name cannot be empty")
	ErrUnknownTimezone = errors.New("school timezone is not a recognised IANA zone name")
)

// School groups venues and users. Its timezone is used only when
// rendering lesson times for display; all engine decisions run on
// absolute instants.
type School struct {
	ID       string
	Name     string
	Slug     string
	Timezone string // IANA zone name, e.g. "America/Los_Angeles"
}

// Validate checks if the School has valid data.
// PRE: School struct is populated
// POST: Returns nil if valid, error otherwise
func (s *School) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if s.Timezone != "" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return ErrUnknownTimezone
		}
	}
	return nil
}

// Location returns the school's display timezone, falling back to UTC
// when none is configured or the stored name no longer resolves.
func (s *School) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
