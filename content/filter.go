package content

import (
	"slices"
	"sort"
	"strings"
)

// PostMatches reports whether a post passes the blog index filters. The
// search term matches case-insensitively against title, excerpt or any tag;
// the tag filter requires an exact tag. Empty filters match everything.
func PostMatches(title, excerpt string, tags []string, term, tag string) bool {
	return matchesSearch(title, excerpt, tags, term) && matchesTag(tags, tag)
}

func matchesSearch(title, excerpt string, tags []string, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(title), term) || strings.Contains(strings.ToLower(excerpt), term) {
		return true
	}
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

func matchesTag(tags []string, tag string) bool {
	return tag == "" || slices.Contains(tags, tag)
}

// DistinctTags returns every tag once, sorted.
func DistinctTags(tagLists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tags := range tagLists {
		for _, t := range tags {
			if _, ok := seen[t]; ok || t == "" {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// SharedTags counts the tags present in both lists.
func SharedTags(a, b []string) int {
	n := 0
	for _, t := range a {
		if slices.Contains(b, t) {
			n++
		}
	}
	return n
}

// Filterable exposes the fields the blog index searches.
type Filterable interface {
	FilterFields() (title, excerpt string, tags []string)
}

// FilterPosts keeps the posts matching the search term and tag, in order.
func FilterPosts[T Filterable](posts []T, term, tag string) []T {
	term = strings.TrimSpace(term)
	out := make([]T, 0, len(posts))
	for _, p := range posts {
		title, excerpt, tags := p.FilterFields()
		if PostMatches(title, excerpt, tags, term, tag) {
			out = append(out, p)
		}
	}
	return out
}
