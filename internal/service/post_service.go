package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/PS-gitpro/myblog/internal/domain"
	"github.com/PS-gitpro/myblog/internal/metrics"
	"github.com/PS-gitpro/myblog/internal/repository"
	"github.com/PS-gitpro/myblog/internal/validator"
)

const (
	// PageSize is the post listing page size.
	PageSize = 5
	// HomeRecentCount is how many recent posts the home page shows.
	HomeRecentCount = 3
	// SidebarRecentCount is how many recent posts the listing sidebar shows.
	SidebarRecentCount = 5
)

// HomePage is the home view context.
type HomePage struct {
	RecentPosts []domain.Post     `json:"recent_posts"`
	Categories  []domain.Category `json:"categories"`
}

// PostPage is one page of the post listing with its sidebar context.
type PostPage struct {
	Posts       []domain.Post     `json:"posts"`
	Page        int               `json:"page"`
	TotalPages  int               `json:"total_pages"`
	TotalPosts  int               `json:"total_posts"`
	Categories  []domain.Category `json:"categories"`
	RecentPosts []domain.Post     `json:"recent_posts"`
}

// PostDetail is the detail view context: the post and its approved
// comments, newest first.
type PostDetail struct {
	Post     domain.Post      `json:"post"`
	Comments []domain.Comment `json:"comments"`
}

// CategoryPage is the by-category listing context.
type CategoryPage struct {
	Category domain.Category `json:"category"`
	Posts    []domain.Post   `json:"posts"`
}

// PostService implements the post workflows and queries.
type PostService struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
	comments   repository.CommentRepository
	validator  *validator.Validator
}

// NewPostService creates a new PostService.
func NewPostService(
	posts repository.PostRepository,
	categories repository.CategoryRepository,
	comments repository.CommentRepository,
	v *validator.Validator,
) *PostService {
	return &PostService{
		posts:      posts,
		categories: categories,
		comments:   comments,
		validator:  v,
	}
}

// Create validates the form and persists a new post. The creation
// timestamp is set once here; the published timestamp defaults to it
// unless the form overrides it.
func (s *PostService) Create(ctx context.Context, authorID string, f *validator.PostForm) (*domain.Post, error) {
	if err := s.validator.ValidatePost(f); err != nil {
		return nil, err
	}

	category, err := s.categories.GetByID(ctx, f.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if category == nil {
		return nil, validation.Errors{
			"category_id": validation.NewError("category_not_found", "category does not exist"),
		}
	}

	now := time.Now()
	publishedAt := now
	if f.PublishedAt != "" {
		// Format already validated.
		publishedAt, _ = time.Parse(time.RFC3339, f.PublishedAt)
	}

	post := &domain.Post{
		ID:          uuid.New().String(),
		Title:       f.Title,
		Content:     f.Content,
		AuthorID:    authorID,
		CategoryID:  f.CategoryID,
		CreatedAt:   now,
		PublishedAt: publishedAt,
	}
	if f.Image != "" {
		post.Image = &f.Image
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	metrics.PostsCreatedTotal.Inc()
	return post, nil
}

// Home returns the home page context.
func (s *PostService) Home(ctx context.Context) (*HomePage, error) {
	recent, err := s.posts.Recent(ctx, HomeRecentCount)
	if err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return &HomePage{RecentPosts: recent, Categories: categories}, nil
}

// ListPage returns one page of posts plus the category list and the
// recent-posts sidebar. Pages outside the valid range clamp to the
// nearest valid page.
func (s *PostService) ListPage(ctx context.Context, page int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}

	posts, total, err := s.posts.List(ctx, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	totalPages := (total + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	recent, err := s.posts.Recent(ctx, SidebarRecentCount)
	if err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}

	return &PostPage{
		Posts:       posts,
		Page:        page,
		TotalPages:  totalPages,
		TotalPosts:  total,
		Categories:  categories,
		RecentPosts: recent,
	}, nil
}

// Detail returns the post and its approved comments.
func (s *PostService) Detail(ctx context.Context, id string) (*PostDetail, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}

	comments, err := s.comments.ListApprovedByPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &PostDetail{Post: *post, Comments: comments}, nil
}

// ByCategory returns the category and its posts.
func (s *PostService) ByCategory(ctx context.Context, categoryID string) (*CategoryPage, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, ErrNotFound
	}

	posts, err := s.posts.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}

	return &CategoryPage{Category: *category, Posts: posts}, nil
}

// Search returns posts matching the query in title, content, or author
// username. A blank query returns no results rather than every post.
func (s *PostService) Search(ctx context.Context, query string) ([]domain.Post, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Post{}, nil
	}
	posts, err := s.posts.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return posts, nil
}

// ByAuthor returns the given user's posts.
func (s *PostService) ByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	posts, err := s.posts.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	return posts, nil
}

// Categories returns all categories.
func (s *PostService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
