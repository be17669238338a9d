package service

import (
	"context"
	"fmt"

	"github.com/PS-gitpro/myblog/internal/metrics"
	"github.com/PS-gitpro/myblog/internal/repository"
)

// LikeResult reports the outcome of a toggle.
type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// LikeService implements the like-toggle workflow.
type LikeService struct {
	likes repository.LikeRepository
	posts repository.PostRepository
}

// NewLikeService creates a new LikeService.
func NewLikeService(likes repository.LikeRepository, posts repository.PostRepository) *LikeService {
	return &LikeService{likes: likes, posts: posts}
}

// Toggle likes the post for the user, or unlikes it if already liked.
// The storage layer's unique constraint decides the branch, so a racing
// duplicate attempt lands in the unlike branch instead of failing.
func (s *LikeService) Toggle(ctx context.Context, postID, userID string) (*LikeResult, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}

	liked, err := s.likes.Toggle(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}

	outcome := "unliked"
	if liked {
		outcome = "liked"
	}
	metrics.LikeTogglesTotal.WithLabelValues(outcome).Inc()

	count, err := s.likes.Count(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	return &LikeResult{Liked: liked, LikeCount: count}, nil
}
