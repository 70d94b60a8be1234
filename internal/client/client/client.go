package client

import (
	"context"

	"github.com/dmitrijs2005/codelog/internal/client/models"
)

// Client is the CodeLog backend contract used by the services.
type Client interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (string, error)
	WhoAmI(ctx context.Context) (string, error)

	Streaks(ctx context.Context) (models.StreakInfo, error)
	CreatePost(ctx context.Context, p models.NewPost) (models.Post, error)

	Posts(ctx context.Context, page int) ([]models.Post, error)
	Like(ctx context.Context, postID string) error
	Unlike(ctx context.Context, postID string) error
	AddComment(ctx context.Context, postID, body string) (models.Comment, error)
	UpdateComment(ctx context.Context, postID, commentID, body string) error
	DeleteComment(ctx context.Context, postID, commentID string) error
	PostComments(ctx context.Context, postID string) ([]models.Comment, error)

	ProfileInfo(ctx context.Context) (models.ProfileInfo, error)
	MyPosts(ctx context.Context) ([]models.Post, error)
	UpdateInfo(ctx context.Context, email, username string) error
	UpdatePassword(ctx context.Context, oldPassword, newPassword, confirm string) error
	DeleteUser(ctx context.Context) error
}
