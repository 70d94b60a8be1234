package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postJSON = `{
  "_id": "p1",
  "title": "Day 3",
  "content": "Fixed the parser",
  "username": "bob",
  "datePosted": "2024/05/01 13:45:10",
  "is_public": true,
  "likes": ["alice", "carol"],
  "number_of_likes": 2,
  "number_of_comments": 1,
  "comments": [
    {"_id": "c1", "body": "nice", "username": "alice", "date_posted": "Wed, 01 May 2024 14:00:00 GMT"}
  ]
}`

func TestPost_DecodesBackendPayload(t *testing.T) {
	var p Post
	require.NoError(t, json.Unmarshal([]byte(postJSON), &p))

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "bob", p.Username)
	assert.True(t, p.Public)
	assert.Equal(t, 2, p.LikeCount)
	assert.Equal(t, 1, p.CommentCount)
	assert.Equal(t, time.Date(2024, 5, 1, 13, 45, 10, 0, time.UTC), p.DatePosted.Time)

	require.Len(t, p.Comments, 1)
	assert.Equal(t, "c1", p.Comments[0].ID)
	assert.Equal(t, time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC), p.Comments[0].DatePosted.Time)
}

func TestTimestamp_UnknownFormatKeepsRaw(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"yesterday"`), &ts))

	assert.True(t, ts.Time.IsZero())
	assert.Equal(t, "yesterday", ts.String())
}

func TestTimestamp_NotAString(t *testing.T) {
	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`42`), &ts))
}

func TestPost_LikedBy(t *testing.T) {
	p := Post{Likes: []string{"alice"}}

	assert.True(t, p.LikedBy("alice"))
	assert.False(t, p.LikedBy("bob"))
	assert.False(t, p.LikedBy(""))
}
