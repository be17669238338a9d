package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLikeRepository implements LikeRepository using PostgreSQL.
type PostgresLikeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository.
func NewPostgresLikeRepository(pool *pgxpool.Pool) *PostgresLikeRepository {
	return &PostgresLikeRepository{pool: pool}
}

// Toggle creates a like for (post, user) or removes the existing one.
// The insert relies on the unique constraint, so two concurrent toggles
// for the same pair can never both insert: the loser's insert affects
// zero rows and falls through to the delete branch.
func (r *PostgresLikeRepository) Toggle(ctx context.Context, postID, userID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO likes (id, post_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`, uuid.New().String(), postID, userID, time.Now())
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// Already liked: remove it. If another request removed it first,
	// the post simply ends up unliked either way.
	if _, err := r.pool.Exec(ctx, `
		DELETE FROM likes WHERE post_id = $1 AND user_id = $2
	`, postID, userID); err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	return false, nil
}

// Count returns the number of likes on a post.
func (r *PostgresLikeRepository) Count(ctx context.Context, postID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM likes WHERE post_id = $1
	`, postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}
