package school

import (
	"testing"
	"time"
)

// TestSchool_Validate tests School validation rules.
func TestSchool_Validate(t *testing.T) {
	valid := School{ID: "s1", Name: "Downtown School", Slug: "downtown-school", Timezone: "America/Los_Angeles"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid school, got: %v", err)
	}

	empty := School{ID: "s2"}
	if err := empty.Validate(); err != ErrEmptyName {
		t.Fatalf("expected ErrEmptyName, got: %v", err)
	}

	badZone := School{ID: "s3", Name: "Elsewhere", Timezone: "Pacific Time (US & Canada)"}
	if err := badZone.Validate(); err != ErrUnknownTimezone {
		t.Fatalf("expected ErrUnknownTimezone, got: %v", err)
	}
}

// TestSchool_Location tests display timezone resolution and fallback.
func TestSchool_Location(t *testing.T) {
	s := School{Name: "Eastern", Timezone: "America/New_York"}
	if s.Location().String() != "America/New_York" {
		t.Errorf("expected America/New_York, got %s", s.Location())
	}

	blank := School{Name: "Nowhere"}
	if blank.Location() != time.UTC {
		t.Error("expected UTC fallback when no timezone is configured")
	}

	broken := School{Name: "Broken", Timezone: "Not/AZone"}
	if broken.Location() != time.UTC {
		t.Error("expected UTC fallback for unresolvable timezone")
	}
}
