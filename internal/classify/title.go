package classify

import (
	"regexp"
	"strings"
	"unicode"
)

var trailingIDPattern = regexp.MustCompile(`-\d+$`)

// TitleFromLink extracts a job title from a listing URL of the form
// .../view/<job-title>-at-<company>-<numeric-id>. Links that do not
// match the pattern yield an empty title; extraction never fails.
func TitleFromLink(link string) string {
	if link == "" {
		return ""
	}

	idx := strings.LastIndex(link, "/view/")
	if idx < 0 {
		return ""
	}
	path := link[idx+len("/view/"):]

	path = trailingIDPattern.ReplaceAllString(path, "")
	if at := strings.Index(path, "-at-"); at >= 0 {
		path = path[:at]
	}

	return titleCase(strings.TrimSpace(strings.ReplaceAll(path, "-", " ")))
}

// titleCase upper-cases the first letter of each word and lower-cases
// the rest, matching the original extraction behavior.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
