package utils

import (
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// IsBlank reports whether a submitted text field is empty once trimmed.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
