package domain

import "time"

// Comment belongs to exactly one post. Comments are approved by
// default; only the admin bulk-approve action ever flips the flag, and
// public listings filter on it. Display order is newest first.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`

	AuthorName string `json:"author_name,omitempty"`
	PostTitle  string `json:"post_title,omitempty"`
}
