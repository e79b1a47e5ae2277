package services

import (
	"regexp"
	"strings"
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugDisallowed = regexp.MustCompile(`[^\w-]+`)
)

// Slugify derives the URL-safe identifier for a category from its display
// name: lowercase, whitespace collapsed to hyphens, everything that is not
// a word character or hyphen stripped. Applying it twice yields the same
// result, so stored slugs survive re-derivation.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugDisallowed.ReplaceAllString(s, "")
	return s
}
