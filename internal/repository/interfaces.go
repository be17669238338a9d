package repository

import (
	"context"

	"github.com/PS-gitpro/myblog/internal/domain"
)

// Lookups return (nil, nil) when the row does not exist; callers decide
// whether that is a not-found response or a validation failure.

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts the user and their empty profile in one
	// transaction. Returns ErrDuplicateUsername when the username is
	// already taken.
	Create(ctx context.Context, user *domain.User, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	// Delete removes the category; its posts go with it via the
	// schema cascade. Reports whether a row was deleted.
	Delete(ctx context.Context, id string) (bool, error)
}

// PostRepository defines methods for post data access. All listings
// order by published_at descending and carry the author username,
// category name, and like count.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns one page of posts plus the total post count.
	List(ctx context.Context, limit, offset int) ([]domain.Post, int, error)
	Recent(ctx context.Context, n int) ([]domain.Post, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	// Search matches the query case-insensitively against title,
	// content, and author username. Each post appears once.
	Search(ctx context.Context, query string) ([]domain.Post, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	// ListApprovedByPost returns approved comments newest first.
	ListApprovedByPost(ctx context.Context, postID string) ([]domain.Comment, error)
	ListUnapproved(ctx context.Context) ([]domain.Comment, error)
	// Approve marks the given comments approved and reports how many
	// rows changed.
	Approve(ctx context.Context, ids []string) (int, error)
}

// LikeRepository defines methods for like data access.
type LikeRepository interface {
	// Toggle atomically creates a like for (post, user) or removes the
	// existing one. The unique constraint decides the branch, so
	// concurrent toggles never produce duplicates. Reports true when
	// the post ended up liked.
	Toggle(ctx context.Context, postID, userID string) (bool, error)
	Count(ctx context.Context, postID string) (int, error)
}

// SessionRepository defines methods for session data access.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
