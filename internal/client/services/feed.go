package services

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/codelog/internal/client/client"
	"github.com/dmitrijs2005/codelog/internal/client/models"
	"github.com/dmitrijs2005/codelog/internal/logging"
)

// FeedService holds the last fetched feed page. Posts are never changed
// locally: every successful mutation is followed by a re-fetch of the
// current page, and a failed one leaves the page as it was.
type FeedService struct {
	client client.Client
	guard  AuthGuard
	log    logging.Logger

	mu    sync.Mutex
	page  int
	posts []models.Post
}

func NewFeedService(c client.Client, guard AuthGuard, log logging.Logger) *FeedService {
	return &FeedService{client: c, guard: guard, log: log.With("component", "feed"), page: 1}
}

// Page is the page number of the held posts.
func (f *FeedService) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// Posts returns a copy of the held page.
func (f *FeedService) Posts() []models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.posts)
}

// Load fetches page (values below 1 mean 1) and replaces the held posts.
func (f *FeedService) Load(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	posts, err := f.client.Posts(ctx, page)
	if err != nil {
		f.log.Warn(ctx, "load feed failed", "page", page, "error", err)
		return f.guard.Guard(ctx, err)
	}

	f.mu.Lock()
	f.page = page
	f.posts = posts
	f.mu.Unlock()
	return nil
}

func (f *FeedService) Like(ctx context.Context, postID string) error {
	return f.mutate(ctx, "like", postID, func(ctx context.Context) error {
		return f.client.Like(ctx, postID)
	})
}

func (f *FeedService) Unlike(ctx context.Context, postID string) error {
	return f.mutate(ctx, "unlike", postID, func(ctx context.Context) error {
		return f.client.Unlike(ctx, postID)
	})
}

// Comment adds a comment; body is trimmed and must not be empty.
func (f *FeedService) Comment(ctx context.Context, postID, body string) error {
	body, err := required("comment", body)
	if err != nil {
		return err
	}
	return f.mutate(ctx, "comment", postID, func(ctx context.Context) error {
		_, err := f.client.AddComment(ctx, postID, body)
		return err
	})
}

func (f *FeedService) UpdateComment(ctx context.Context, postID, commentID, body string) error {
	body, err := required("comment", body)
	if err != nil {
		return err
	}
	return f.mutate(ctx, "update comment", postID, func(ctx context.Context) error {
		return f.client.UpdateComment(ctx, postID, commentID, body)
	})
}

func (f *FeedService) DeleteComment(ctx context.Context, postID, commentID string) error {
	return f.mutate(ctx, "delete comment", postID, func(ctx context.Context) error {
		return f.client.DeleteComment(ctx, postID, commentID)
	})
}

// Comments reads the comments of one post without touching the held page.
func (f *FeedService) Comments(ctx context.Context, postID string) ([]models.Comment, error) {
	list, err := f.client.PostComments(ctx, postID)
	if err != nil {
		f.log.Warn(ctx, "load comments failed", "post_id", postID, "error", err)
		return nil, f.guard.Guard(ctx, err)
	}
	return list, nil
}

func (f *FeedService) mutate(ctx context.Context, action, postID string, call func(context.Context) error) error {
	if err := call(ctx); err != nil {
		f.log.Warn(ctx, action+" failed", "post_id", postID, "error", err)
		return f.guard.Guard(ctx, err)
	}
	return f.Load(ctx, f.Page())
}
