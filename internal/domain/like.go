package domain

import "time"

// Like records that a user liked a post. At most one like exists per
// (post, user) pair, enforced by a unique constraint in storage.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
