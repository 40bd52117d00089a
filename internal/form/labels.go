package form

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Titleize converts a camelCase field key into a human-friendly title:
// a space is inserted before every non-initial upper-case letter, the first
// character is capitalised, and surrounding whitespace is trimmed. So
// "applicantDetails" becomes "Applicant Details".
func Titleize(key string) string {
	var out strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}

	title := strings.TrimSpace(out.String())
	if title == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(title)
	return string(unicode.ToUpper(first)) + title[size:]
}
