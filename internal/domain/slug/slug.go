package slug

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidTitle signals that a title is blank (or reduces to nothing)
// and no slug can be derived from it.
var ErrInvalidTitle = errors.New("title cannot be blank")

// asciiFold strips combining marks after NFD decomposition, turning
// accented letters into their plain ASCII base form.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate derives a URL-safe, human-readable identifier from a title.
// The transform is deterministic: lower-case, transliterate to ASCII,
// collapse every run of non-alphanumeric characters to a single hyphen,
// strip leading and trailing hyphens. Uniqueness across lessons is the
// caller's responsibility; Generate only guarantees the base transform.
// PRE: none
// POST: Returns the slug, or ErrInvalidTitle when nothing usable remains
func Generate(title string) (string, error) {
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return "", ErrInvalidTitle
	}

	folded, _, err := transform.String(asciiFold, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	out := b.String()
	if out == "" {
		return "", ErrInvalidTitle
	}
	return out, nil
}
