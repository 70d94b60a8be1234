package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/codelog/internal/client/models"
)

// usage prints the usage line and ends the command without a message
// of its own.
func (a *App) usage(line string) error {
	fmt.Fprintln(a.out, "Usage:", line)
	return nil
}

// Feed loads and prints a feed page: "feed", "feed 3", "feed next", "feed prev".
func (a *App) Feed(ctx context.Context, args []string) error {
	page := a.feed.Page()
	if len(args) > 0 {
		switch args[0] {
		case "next", "n":
			page++
		case "prev", "p":
			page--
		default:
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return a.usage("feed [page|next|prev]")
			}
			page = n
		}
	}

	callCtx, cancel := a.withTimeout(ctx)
	err := a.feed.Load(callCtx, page)
	cancel()
	if err != nil {
		return err
	}
	a.printFeed()
	return nil
}

func (a *App) printFeed() {
	posts := a.feed.Posts()
	fmt.Fprintf(a.out, "Feed, page %d\n", a.feed.Page())
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts on this page.")
		return
	}
	printPosts(a.out, posts, a.currentUser())
}

func printPosts(w io.Writer, posts []models.Post, user string) {
	for i, p := range posts {
		liked := ""
		if p.LikedBy(user) {
			liked = " (liked)"
		}
		visibility := ""
		if !p.Public {
			visibility = " [private]"
		}
		fmt.Fprintf(w, "[%d] %s%s by %s on %s  id=%s\n", i+1, p.Title, visibility, p.Username, p.DatePosted, p.ID)
		for _, line := range strings.Split(p.Content, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
		fmt.Fprintf(w, "    likes: %d%s  comments: %d\n", p.LikeCount, liked, p.CommentCount)
	}
}

// resolvePost turns "3" (position in the shown page) or a raw id into a
// post id.
func (a *App) resolvePost(ref string) string {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return ref
	}
	posts := a.feed.Posts()
	if n >= 1 && n <= len(posts) {
		return posts[n-1].ID
	}
	return ref
}

func (a *App) feedAction(ctx context.Context, args []string, usage string, done string,
	action func(ctx context.Context, postID string) error) error {
	if len(args) < 1 {
		return a.usage(usage)
	}
	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := action(callCtx, a.resolvePost(args[0])); err != nil {
		return err
	}
	fmt.Fprintln(a.out, done)
	a.printFeed()
	return nil
}

func (a *App) Like(ctx context.Context, args []string) error {
	return a.feedAction(ctx, args, "like <n|post-id>", "Liked.", a.feed.Like)
}

func (a *App) Unlike(ctx context.Context, args []string) error {
	return a.feedAction(ctx, args, "unlike <n|post-id>", "Unliked.", a.feed.Unlike)
}

func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return a.usage("comment <n|post-id>")
	}
	body, err := getSimpleText(a.reader, "Your comment", a.out)
	if err != nil {
		return err
	}
	return a.feedAction(ctx, args, "", "Comment added.", func(ctx context.Context, postID string) error {
		return a.feed.Comment(ctx, postID, body)
	})
}

func (a *App) EditComment(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return a.usage("editcomment <n|post-id> <comment-id>")
	}
	body, err := getSimpleText(a.reader, "New text", a.out)
	if err != nil {
		return err
	}
	return a.feedAction(ctx, args, "", "Comment updated.", func(ctx context.Context, postID string) error {
		return a.feed.UpdateComment(ctx, postID, args[1], body)
	})
}

func (a *App) DeleteComment(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return a.usage("delcomment <n|post-id> <comment-id>")
	}
	return a.feedAction(ctx, args, "", "Comment deleted.", func(ctx context.Context, postID string) error {
		return a.feed.DeleteComment(ctx, postID, args[1])
	})
}

// Comments prints the comments of one post.
func (a *App) Comments(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return a.usage("comments <n|post-id>")
	}
	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.feed.Comments(callCtx, a.resolvePost(args[0]))
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No comments yet.")
		return nil
	}
	for _, c := range list {
		fmt.Fprintf(a.out, "- %s (%s): %s  id=%s\n", c.Username, c.DatePosted, c.Body, c.ID)
	}
	return nil
}
