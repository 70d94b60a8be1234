package models

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/dmitrijs2005/codelog/internal/common"
)

// commentDateLayout is how the backend stamps comments (RFC 1123, GMT).
const commentDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// Timestamp is a backend date. Raw keeps the original string so that an
// unexpected format is still displayable; Time is zero in that case.
type Timestamp struct {
	Time time.Time
	Raw  string
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t.Raw = raw
	t.Time = time.Time{}
	for _, layout := range []string{common.BackendDateLayout, commentDateLayout, time.RFC3339} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			break
		}
	}
	return nil
}

func (t Timestamp) String() string {
	if t.Time.IsZero() {
		return t.Raw
	}
	return t.Time.Format("2006-01-02 15:04")
}

type Comment struct {
	ID         string    `json:"_id"`
	Body       string    `json:"body"`
	Username   string    `json:"username"`
	DatePosted Timestamp `json:"date_posted"`
}

type Post struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Username     string    `json:"username"`
	DatePosted   Timestamp `json:"datePosted"`
	Public       bool      `json:"is_public"`
	Likes        []string  `json:"likes"`
	LikeCount    int       `json:"number_of_likes"`
	CommentCount int       `json:"number_of_comments"`
	Comments     []Comment `json:"comments,omitempty"`
}

// LikedBy reports whether username is among the post's likers.
func (p Post) LikedBy(username string) bool {
	return username != "" && slices.Contains(p.Likes, username)
}
