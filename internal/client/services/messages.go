package services

import (
	"errors"

	"github.com/dmitrijs2005/codelog/internal/client/client"
	"github.com/dmitrijs2005/codelog/internal/client/countdown"
)

const (
	AuthLostMessage       = "Sorry, it seems your Authentication was lost or corrupted. Please log in again."
	InvalidCredentialsMsg = "Invalid credentials"
	GenericErrorMessage   = "An error occurred. Please try again later."
)

// ErrInvalidCredentials marks a login refused by the backend.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserMessage turns an error returned by this package into the text shown
// to the user. nil yields "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return InvalidCredentialsMsg
	}
	if errors.Is(err, client.ErrUnauthorized) {
		return AuthLostMessage
	}

	var rl *client.RateLimitError
	if errors.As(err, &rl) {
		if rl.Wait > 0 {
			return countdown.WaitMessage(rl.Wait)
		}
		if rl.Message != "" {
			return "Error: " + rl.Message
		}
		return GenericErrorMessage
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return "Error: " + apiErr.Message
	}
	return GenericErrorMessage
}
