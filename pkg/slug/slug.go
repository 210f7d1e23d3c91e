package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make creates a URL-friendly slug from the given name.
//
// Examples:
//   - "Loose Fit Hoodie" → "loose-fit-hoodie"
//   - "Café  Jacket!" → "caf-jacket"
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	// Replace any run of non-alphanumeric characters with a single hyphen.
	s = nonAlnum.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
