package domain

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>?`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeQuery sanitizes raw user search text: surrounding whitespace is
// trimmed, HTML-tag-like substrings are stripped, the result is lowercased
// and internal runs of whitespace collapse to single spaces.
// The function is pure and idempotent.
func NormalizeQuery(query string) string {
	cleaned := strings.TrimSpace(query)
	cleaned = tagPattern.ReplaceAllString(cleaned, "")
	cleaned = strings.ToLower(cleaned)
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
