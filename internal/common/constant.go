// Package common contains constants shared by the client layers.
package common

const (
	// AuthorizationHeaderName carries the bearer credential.
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "

	// RequestIDHeaderName correlates a client log line with a backend request.
	RequestIDHeaderName = "X-Request-ID"

	// BackendDateLayout is the layout the backend uses for post timestamps.
	BackendDateLayout = "2006/01/02 15:04:05"
)
