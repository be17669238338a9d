package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PS-gitpro/myblog/internal/domain"
)

// PostgresProfileRepository implements ProfileRepository using PostgreSQL.
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository.
func NewPostgresProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{pool: pool}
}

// GetByUserID returns the profile owned by the given user, or (nil, nil).
func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, bio, location, birth_date, avatar, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(&p.ID, &p.UserID, &p.Bio, &p.Location, &p.BirthDate, &p.Avatar, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &p, nil
}

// Update persists the mutable profile fields.
func (r *PostgresProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET bio = $1, location = $2, birth_date = $3, avatar = $4, updated_at = $5
		WHERE user_id = $6
	`, profile.Bio, profile.Location, profile.BirthDate, profile.Avatar, profile.UpdatedAt, profile.UserID)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update profile: no profile for user %s", profile.UserID)
	}
	return nil
}
