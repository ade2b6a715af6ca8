// Package validation contains input format rules for user-supplied fields.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nickRe  = regexp.MustCompile(`^[a-zA-Z0-9_]{2,30}$`)
)

// ValidateEmail checks basic email shape.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return errors.New("Invalid email format")
	}
	return nil
}

// ValidateNick checks the nick format: 2-30 chars, letters/digits/underscore.
func ValidateNick(nick string) error {
	if !nickRe.MatchString(nick) {
		return errors.New("Nick must be 2-30 characters: letters, digits or underscore")
	}
	return nil
}

// ValidatePassword enforces the minimum password length. No character-class
// rules: parity with the accounts the legacy system accepted.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("Password must be at least 6 characters")
	}
	for _, r := range password {
		if unicode.IsSpace(r) {
			return errors.New("Password must not contain whitespace")
		}
	}
	return nil
}
