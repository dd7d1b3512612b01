package venue

import "errors"

// Domain errors
var (
	ErrEmptyName     = errors.New("venue name cannot be empty")
	ErrMissingSchool = errors.New("venue must belong to a school")
)

// Venue is a physical location where lessons are held. Every venue
// belongs to exactly one school; lessons reach their school through it.
type Venue struct {
	ID       string
	Name     string
	Address  string
	City     string
	SchoolID string
}

// Validate checks if the Venue has valid data.
// PRE: Venue struct is populated
// POST: Returns nil if valid, error otherwise
func (v *Venue) Validate() error {
	if v.Name == "" {
		return ErrEmptyName
	}
	if v.SchoolID == "" {
		return ErrMissingSchool
	}
	return nil
}
