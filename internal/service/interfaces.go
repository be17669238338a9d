package service

import (
	"context"

	"github.com/PS-gitpro/myblog/internal/domain"
	"github.com/PS-gitpro/myblog/internal/validator"
)

// Service interfaces exist for dependency injection and mocking in
// handler tests.

// PostServiceInterface defines the post workflows and queries.
type PostServiceInterface interface {
	// Create persists a new post authored by authorID.
	Create(ctx context.Context, authorID string, f *validator.PostForm) (*domain.Post, error)
	// Home returns the home page context: recent posts and categories.
	Home(ctx context.Context) (*HomePage, error)
	// ListPage returns one page of posts plus listing context. Pages
	// are 1-based.
	ListPage(ctx context.Context, page int) (*PostPage, error)
	// Detail returns a post with its approved comments.
	Detail(ctx context.Context, id string) (*PostDetail, error)
	// ByCategory returns a category and its posts.
	ByCategory(ctx context.Context, categoryID string) (*CategoryPage, error)
	// Search returns posts matching the query; a blank query matches
	// nothing.
	Search(ctx context.Context, query string) ([]domain.Post, error)
	// ByAuthor returns the posts authored by the given user.
	ByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	// Categories returns all categories, for the create-post form.
	Categories(ctx context.Context) ([]domain.Category, error)
}

// CommentServiceInterface defines the comment workflows.
type CommentServiceInterface interface {
	// Add persists a comment and notifies the post author best-effort.
	Add(ctx context.Context, postID, authorID string, f *validator.CommentForm) (*domain.Comment, error)
	// Unapproved lists comments awaiting moderation.
	Unapproved(ctx context.Context) ([]domain.Comment, error)
	// Approve marks the given comments approved.
	Approve(ctx context.Context, ids []string) (int, error)
}

// LikeServiceInterface defines the like workflow.
type LikeServiceInterface interface {
	// Toggle likes or unlikes the post for the given user.
	Toggle(ctx context.Context, postID, userID string) (*LikeResult, error)
}

// AccountServiceInterface defines registration, login, and profile
// workflows.
type AccountServiceInterface interface {
	Register(ctx context.Context, f *validator.RegisterForm) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, f *validator.ProfileForm) (*domain.Profile, error)
}

// CategoryServiceInterface defines the admin category workflows.
type CategoryServiceInterface interface {
	Create(ctx context.Context, f *validator.CategoryForm) (*domain.Category, error)
	// Delete removes a category and, through the schema cascade, its
	// posts.
	Delete(ctx context.Context, id string) error
}
