package content

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a lowercase, hyphen separated identifier.
// The result is either empty or matches ^[a-z0-9]+(-[a-z0-9]+)*$.
func Slugify(s string) string {
	made := slug.Make(s)
	made = nonSlugRuns.ReplaceAllString(made, "-")
	return strings.Trim(made, "-")
}

// IsSlug reports whether s is already in slug form.
func IsSlug(s string) bool {
	return s != "" && Slugify(s) == s
}
