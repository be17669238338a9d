package domain

import "time"

// Post is an authored article under a category. CreatedAt is set once
// at creation and never changes; PublishedAt defaults to CreatedAt but
// may be overridden, and all listings order by it descending.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"author_id"`
	CategoryID  string    `json:"category_id"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	PublishedAt time.Time `json:"published_at"`

	// Denormalized for listings and the detail view; populated by
	// repository joins, never stored.
	AuthorName   string `json:"author_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	LikeCount    int    `json:"like_count"`
}
