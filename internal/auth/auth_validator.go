package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateSignup checks all signup constraints independently and returns
// every violated rule, in declaration order. An empty slice means valid.
func ValidateSignup(username, email, password string) []string {
	var errs []string

	if strings.TrimSpace(username) == "" {
		errs = append(errs, "Username is required")
	} else if utf8.RuneCountInString(strings.TrimSpace(username)) < 3 {
		errs = append(errs, "Username must be at least 3 characters")
	}

	if strings.TrimSpace(email) == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "Please enter a valid email address")
	}

	if password == "" {
		errs = append(errs, "Password is required")
	} else if utf8.RuneCountInString(password) < 6 {
		errs = append(errs, "Password must be at least 6 characters")
	}

	return errs
}
