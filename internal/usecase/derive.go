package usecase

import (
	"regexp"
	"strings"
)

var (
	slugStripRe  = regexp.MustCompile(`[^\w\s]`)
	slugHyphenRe = regexp.MustCompile(`\s+`)
)

// wordsPerMinute is the assumed reading speed for the reading-time estimate.
const wordsPerMinute = 200

// Slugify derives a URL-safe slug from a blog title: lowercase, strip anything
// that is not a word character or whitespace, then collapse whitespace runs
// into single hyphens. Pure function of the title; uniqueness is enforced by
// the database, not here.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugHyphenRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// ReadingTime estimates minutes to read the content: word count at 200 wpm,
// rounded up, never below 1. Empty content still reads as 1 minute.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
