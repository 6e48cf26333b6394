package models

import (
	"regexp"
	"strings"
)

// ExcerptLength is how much of a post body is kept as its stored excerpt.
const ExcerptLength = 150

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a URL-safe key from a title: lowercased, special characters
// stripped, runs of whitespace/underscores/hyphens collapsed to single
// hyphens, leading and trailing hyphens removed. A title made entirely of
// special characters yields the empty string; callers must reject that as a
// validation failure since an empty slug is not a usable route key.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	return slugTrim.ReplaceAllString(slug, "")
}

// Excerpt truncates content to at most maxLength characters, collapsing
// newlines, with a trailing ellipsis when truncated. The cut is counted in
// runes so multi-byte text is never split mid-character. Stored once at write
// time and never recomputed.
func Excerpt(content string, maxLength int) string {
	text := strings.TrimSpace(strings.ReplaceAll(content, "\n", " "))
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}
