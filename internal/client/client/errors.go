package client

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnavailable wraps transport failures: the backend could not be reached.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized marks 401/422 answers: bad credentials or a missing,
	// expired or malformed token.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx answer carrying the backend's error text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// RateLimitError is returned when the backend refuses a post because the
// posting interval has not elapsed. Wait is zero when the backend did not
// say how long to wait.
type RateLimitError struct {
	Message string
	Wait    time.Duration
}

func (e *RateLimitError) Error() string {
	if e.Wait > 0 {
		return fmt.Sprintf("rate limited for %s: %s", e.Wait, e.Message)
	}
	return "rate limited: " + e.Message
}
