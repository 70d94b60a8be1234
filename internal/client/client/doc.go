// Package client talks to the CodeLog backend over HTTP/JSON.
//
// # Layers
//
//  1. HTTPClient sends a Request to the configured base URL. It attaches the
//     access token from the Token Store as "Authorization: Bearer <token>"
//     and an X-Request-ID, returns the raw status and body, and passes
//     transport errors through untouched. It never retries.
//  2. API implements the Client interface on top of any Doer. It owns the
//     endpoint paths and payload shapes and maps statuses to errors.
//
// # Errors
//
//   - transport failure           -> ErrUnavailable (wrapping the cause)
//   - 401 / 422                   -> ErrUnauthorized (wrapping *APIError)
//   - 429, or an error with "ttl" -> *RateLimitError
//   - any other non-2xx           -> *APIError
//
// Match them with errors.Is and errors.As.
package client
