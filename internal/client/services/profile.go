package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/codelog/internal/client/client"
	"github.com/dmitrijs2005/codelog/internal/client/models"
	"github.com/dmitrijs2005/codelog/internal/logging"
)

// ProfileService reads and edits the logged-in user's account.
type ProfileService struct {
	client      client.Client
	guard       AuthGuard
	log         logging.Logger
	minPassword int
}

func NewProfileService(c client.Client, guard AuthGuard, log logging.Logger, minPassword int) *ProfileService {
	if minPassword <= 0 {
		minPassword = DefaultMinPasswordLength
	}
	return &ProfileService{client: c, guard: guard, log: log.With("component", "profile"), minPassword: minPassword}
}

func (p *ProfileService) Info(ctx context.Context) (models.ProfileInfo, error) {
	info, err := p.client.ProfileInfo(ctx)
	if err != nil {
		p.log.Warn(ctx, "load profile failed", "error", err)
		return models.ProfileInfo{}, p.guard.Guard(ctx, err)
	}
	return info, nil
}

// Posts lists the user's own posts, public and private.
func (p *ProfileService) Posts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.client.MyPosts(ctx)
	if err != nil {
		p.log.Warn(ctx, "load own posts failed", "error", err)
		return nil, p.guard.Guard(ctx, err)
	}
	return posts, nil
}

// UpdateInfo changes the email, the username or both. Empty values are
// left unchanged.
func (p *ProfileService) UpdateInfo(ctx context.Context, email, username string) error {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" && username == "" {
		return invalid("email", "Please enter a new email and/or username")
	}
	if email != "" && !ValidEmail(email) {
		return invalid("email", "Invalid email")
	}

	if err := p.client.UpdateInfo(ctx, email, username); err != nil {
		p.log.Warn(ctx, "update profile failed", "error", err)
		return p.guard.Guard(ctx, err)
	}
	return nil
}

func (p *ProfileService) UpdatePassword(ctx context.Context, oldPassword, newPassword, confirm string) error {
	if oldPassword == "" {
		return invalid("old_password", "Please enter your current password")
	}
	if newPassword != confirm {
		return invalid("confirm_password", "New password and Confirm password do not match")
	}
	if err := validateNewPassword(newPassword, p.minPassword); err != nil {
		return err
	}

	if err := p.client.UpdatePassword(ctx, oldPassword, newPassword, confirm); err != nil {
		p.log.Warn(ctx, "update password failed", "error", err)
		return p.guard.Guard(ctx, err)
	}
	return nil
}
