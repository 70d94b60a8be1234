package cli

import (
	"context"
	"fmt"
)

// Profile prints the account details.
func (a *App) Profile(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	info, err := a.profile.Info(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Username: %s\nEmail:    %s\n", info.Username, info.Email)
	return nil
}

// MyPosts lists the user's own posts, private ones included.
func (a *App) MyPosts(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	posts, err := a.profile.Posts(ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "You have not posted yet.")
		return nil
	}
	printPosts(a.out, posts, a.currentUser())
	return nil
}

// UpdateInfo changes email and/or username; blank answers keep the value.
func (a *App) UpdateInfo(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "New email (blank to keep)", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "New username (blank to keep)", a.out)
	if err != nil {
		return err
	}

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()
	if err := a.profile.UpdateInfo(callCtx, email, username); err != nil {
		return err
	}
	if username != "" {
		a.setUser(username)
	}
	fmt.Fprintln(a.out, "Your email and/or username updated successfully!")
	return nil
}

func (a *App) UpdatePassword(ctx context.Context, _ []string) error {
	oldPassword, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Confirm new password", a.out)
	if err != nil {
		return err
	}

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()
	if err := a.profile.UpdatePassword(callCtx, oldPassword, newPassword, confirm); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password updated successfully!")
	return nil
}

// DeleteAccount asks for confirmation, then deletes the account.
func (a *App) DeleteAccount(ctx context.Context, _ []string) error {
	ok, err := getConfirmation(a.reader, "Delete your account? This cannot be undone.", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.session.DeleteAccount(callCtx)
}
