package models

type ProfileInfo struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// NewPost is the payload of a journal entry.
type NewPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Public  bool   `json:"is_public"`
}
