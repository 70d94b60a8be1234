// Package cli provides the interactive CodeLog command-line client.
//
// It wires configuration, the local token database, the backend client and
// the services into a REPL. The prompt shows the logged-in user and, while
// posting is blocked, the live "You must wait ..." countdown.
//
// Views
//
// "home" is the only view with background work: it fetches the streak once
// and may start a countdown. Each opening gets a viewScope; leaving the view
// (opening it again, logging out, losing the session) closes the scope,
// which stops the countdown and drops any result still in flight.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command table.
package cli
