package cli

import (
	"context"
	"fmt"
)

// getSimpleText, getPassword, getMultiline and getConfirmation are
// indirections used to facilitate testing. They point to interactive input
// helpers and can be swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getMultiline    = GetMultiline
	getConfirmation = GetConfirmation
)

// Register prompts for username, email and password and creates an account.
// On success the session manager sends the user to the login screen.
func (a *App) Register(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.session.Register(ctx, username, email, password)
}

// Login prompts for credentials, stores the session and opens the home view.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	callCtx, cancel := a.withTimeout(ctx)
	err = a.session.Login(callCtx, email, password)
	cancel()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	a.loadUser(ctx)
	return a.Home(ctx, nil)
}

// loadUser caches the username used to mark liked posts. A failure only
// costs the marker, so it is logged and otherwise ignored.
func (a *App) loadUser(ctx context.Context) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	name, err := a.session.WhoAmI(ctx)
	if err != nil {
		a.log.Warn(ctx, "whoami failed", "error", err)
		return
	}
	a.setUser(name)
}

// Logout signs out; the backend call is best effort.
func (a *App) Logout(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.session.Logout(ctx)
}

// WhoAmI prints the username reported by the backend and the token subject.
func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	name, err := a.session.WhoAmI(ctx)
	if err != nil {
		return err
	}
	a.setUser(name)

	fmt.Fprintf(a.out, "Logged in as %s\n", name)
	if sub := a.session.Identity(ctx); sub != "" {
		fmt.Fprintf(a.out, "Token subject: %s\n", sub)
	}
	return nil
}

// Refresh renews the access token with the stored refresh token.
func (a *App) Refresh(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.session.Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Access token refreshed")
	return nil
}
