package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Format names a syntactic check attached to a string rule.
type Format string

const (
	FormatEmail  Format = "email"
	FormatPhone  Format = "phone"
	FormatPostal Format = "postal"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Leading optional + and country code, optional parenthesized segment,
	// then digits with the usual separators (spaces, dashes, dots, slashes).
	phonePattern  = regexp.MustCompile(`^\+?\s*[0-9]{0,4}\s*(\([0-9]{1,6}\)\s*)?[0-9][0-9 .\-/]*$`)
	postalPattern = regexp.MustCompile(`^[0-9]{5,6}$`)
)

// Check validates a candidate string against the format. A nil return means
// the value satisfies the format.
func (f Format) Check(value string) error {
	switch f {
	case FormatEmail:
		if !emailPattern.MatchString(value) {
			return fmt.Errorf("must be a valid email address")
		}
	case FormatPhone:
		if !phonePattern.MatchString(value) {
			return fmt.Errorf("must be a valid phone number")
		}
	case FormatPostal:
		if !postalPattern.MatchString(value) {
			return fmt.Errorf("must be a valid postal code (5-6 digits)")
		}
	}
	return nil
}

type keyHeuristic struct {
	substring string
	format    Format
}

// keyHeuristics maps key-name fragments to format checks. The match is a
// case-insensitive substring test against the field key, never an inspection
// of the value, so it is a best-effort guess: a mismatch is a modelling
// limitation, not a bug. A key matching several fragments collects every
// matching format, and all of them must hold.
var keyHeuristics = []keyHeuristic{
	{substring: "email", format: FormatEmail},
	{substring: "phone", format: FormatPhone},
	{substring: "mobile", format: FormatPhone},
	{substring: "contact", format: FormatPhone},
	{substring: "postal", format: FormatPostal},
	{substring: "zip", format: FormatPostal},
}

// FormatsForKey returns the format checks the heuristics assign to a field
// key, in table order, with duplicate formats collapsed.
func FormatsForKey(key string) []Format {
	lowered := strings.ToLower(key)
	var out []Format
	seen := make(map[Format]struct{}, len(keyHeuristics))
	for _, h := range keyHeuristics {
		if !strings.Contains(lowered, h.substring) {
			continue
		}
		if _, dup := seen[h.format]; dup {
			continue
		}
		seen[h.format] = struct{}{}
		out = append(out, h.format)
	}
	return out
}
