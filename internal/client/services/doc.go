// Package services holds the CodeLog client's application logic: the auth
// session lifecycle, the posting-streak cooldown, feed interaction, journal
// posting and profile management.
//
// Every service talks to the backend through client.Client. Calls that need
// a logged-in user pass their error through an AuthGuard; on
// client.ErrUnauthorized the SessionManager purges the stored tokens and
// redirects to the login screen. No service retries a failed call.
package services
