package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PS-gitpro/myblog/internal/domain"
)

// selectPost is the shared projection for post reads: the post row plus
// the author username, category name, and like count every listing needs.
const selectPost = `
	SELECT p.id, p.title, p.content, p.author_id, p.category_id, p.image,
	       p.created_at, p.published_at,
	       u.username, c.name,
	       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count
	FROM posts p
	JOIN users u ON u.id = p.author_id
	JOIN categories c ON c.id = p.category_id
`

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

// Create inserts a post.
func (r *PostgresPostRepository) Create(ctx context.Context, post *domain.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, title, content, author_id, category_id, image, created_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, post.ID, post.Title, post.Content, post.AuthorID, post.CategoryID, post.Image, post.CreatedAt, post.PublishedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID returns the post with the given ID, or (nil, nil).
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, selectPost+` WHERE p.id = $1`, id)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post: %w", err)
	}
	return p, nil
}

// List returns one page of posts ordered by published_at descending,
// plus the total post count for pagination.
func (r *PostgresPostRepository) List(ctx context.Context, limit, offset int) ([]domain.Post, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	posts, err := r.queryPosts(ctx, selectPost+`
		ORDER BY p.published_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Recent returns the n most recently published posts.
func (r *PostgresPostRepository) Recent(ctx context.Context, n int) ([]domain.Post, error) {
	return r.queryPosts(ctx, selectPost+`
		ORDER BY p.published_at DESC
		LIMIT $1
	`, n)
}

// ListByCategory returns a category's posts, published_at descending.
func (r *PostgresPostRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Post, error) {
	return r.queryPosts(ctx, selectPost+`
		WHERE p.category_id = $1
		ORDER BY p.published_at DESC
	`, categoryID)
}

// ListByAuthor returns an author's posts, published_at descending.
func (r *PostgresPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	return r.queryPosts(ctx, selectPost+`
		WHERE p.author_id = $1
		ORDER BY p.published_at DESC
	`, authorID)
}

// Search matches the query case-insensitively against title, content,
// and author username. A single query keeps each post unique even when
// it matches in several fields.
func (r *PostgresPostRepository) Search(ctx context.Context, query string) ([]domain.Post, error) {
	pattern := "%" + escapeLike(query) + "%"
	return r.queryPosts(ctx, selectPost+`
		WHERE p.title ILIKE $1 OR p.content ILIKE $1 OR u.username ILIKE $1
		ORDER BY p.published_at DESC
	`, pattern)
}

func (r *PostgresPostRepository) queryPosts(ctx context.Context, sql string, args ...any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CategoryID, &p.Image,
		&p.CreatedAt, &p.PublishedAt, &p.AuthorName, &p.CategoryName, &p.LikeCount)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// escapeLike escapes LIKE wildcards so the user's query is matched
// literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
