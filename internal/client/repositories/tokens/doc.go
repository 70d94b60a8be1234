// Package tokens implements the client's Token Store: durable storage for
// the two bearer tokens (access and refresh) in the local sqlite database.
//
// The store is deliberately dumb. It does not validate, decode or expire
// tokens; it only keeps the two named slots until they are cleared.
//
// Schema (created by the embedded goose migrations):
//
//	tokens(slot TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMP)
//
// An absent slot reads as the empty string with a nil error.
package tokens
