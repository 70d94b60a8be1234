package services

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMinPasswordLength is the registration/password-change minimum used
// when the configuration does not set one.
const DefaultMinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError reports input rejected before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func validateLogin(email, password string) error {
	if !ValidEmail(email) {
		return invalid("email", "Invalid email")
	}
	if password == "" {
		return invalid("password", "Please enter your password")
	}
	return nil
}

func validateRegistration(username, email, password string, minPassword int) error {
	switch {
	case strings.TrimSpace(username) == "":
		return invalid("username", "Please enter your username")
	case email == "":
		return invalid("email", "Please enter your email")
	case !ValidEmail(email):
		return invalid("email", "Invalid email")
	}
	return validateNewPassword(password, minPassword)
}

func validateNewPassword(password string, minPassword int) error {
	if len(password) < minPassword {
		return invalid("password", fmt.Sprintf("Password must include at least %d characters", minPassword))
	}
	return nil
}

func required(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", invalid(field, fmt.Sprintf("%s must not be empty", field))
	}
	return v, nil
}
