// Package slug turns wear names into filesystem- and URL-safe tokens for
// stored upload filenames.
package slug

import "strings"

// FromName lowercases the name and collapses every run of characters
// outside [a-z0-9] into a single dash. Names with nothing usable left
// fall back to "wear".
func FromName(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingDash = b.Len() > 0
			continue
		}
		if pendingDash {
			b.WriteByte('-')
			pendingDash = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "wear"
	}
	return b.String()
}
