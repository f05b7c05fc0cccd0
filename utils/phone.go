package utils

import (
	"regexp"
	"strings"
)

var phoneSeparators = regexp.MustCompile(`[\s\-().]`)

// NormalizePhone strips the separators people type into phone numbers
// (spaces, dashes, parentheses, dots) and keeps digits and a leading +.
func NormalizePhone(phone string) string {
	return phoneSeparators.ReplaceAllString(strings.TrimSpace(phone), "")
}
