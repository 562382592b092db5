package classify

import (
	"regexp"
	"strings"
)

var (
	separatorPattern  = regexp.MustCompile(`[-_/\\.,;:|]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes text for substring matching: lower-case,
// separators replaced with spaces, whitespace runs collapsed. Empty
// input yields an empty string; Normalize never fails.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = separatorPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
