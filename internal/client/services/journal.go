package services

import (
	"context"

	"github.com/dmitrijs2005/codelog/internal/client/client"
	"github.com/dmitrijs2005/codelog/internal/client/models"
	"github.com/dmitrijs2005/codelog/internal/logging"
)

// JournalService publishes journal entries.
type JournalService struct {
	client client.Client
	guard  AuthGuard
	log    logging.Logger
}

func NewJournalService(c client.Client, guard AuthGuard, log logging.Logger) *JournalService {
	return &JournalService{client: c, guard: guard, log: log.With("component", "journal")}
}

// Create posts an entry. A post inside the posting interval fails with
// *client.RateLimitError.
func (j *JournalService) Create(ctx context.Context, title, content string, public bool) (models.Post, error) {
	title, err := required("title", title)
	if err != nil {
		return models.Post{}, err
	}
	content, err = required("content", content)
	if err != nil {
		return models.Post{}, err
	}

	p, err := j.client.CreatePost(ctx, models.NewPost{Title: title, Content: content, Public: public})
	if err != nil {
		j.log.Warn(ctx, "create post failed", "error", err)
		return models.Post{}, j.guard.Guard(ctx, err)
	}
	j.log.Info(ctx, "post created", "post_id", p.ID)
	return p, nil
}
