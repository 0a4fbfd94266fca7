// Package transform holds the pure data-shaping helpers shared by the
// repositories and admin tooling: slug generation, YouTube URL parsing,
// absent-field stripping and the in-memory date sort used in place of
// composite Firestore indexes.
package transform

import (
	"regexp"
	"strings"
)

const maxSlugLen = 100

var (
	nonSlugRunes = regexp.MustCompile(`[^\w\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Slug derives a URL-friendly identifier from a title: lowercased, special
// characters removed, whitespace collapsed to single hyphens, capped at 100
// characters. Empty input yields an empty slug.
func Slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugRunes.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
	}
	return s
}
