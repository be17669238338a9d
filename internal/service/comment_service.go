package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PS-gitpro/myblog/internal/domain"
	"github.com/PS-gitpro/myblog/internal/logger"
	"github.com/PS-gitpro/myblog/internal/mailer"
	"github.com/PS-gitpro/myblog/internal/metrics"
	"github.com/PS-gitpro/myblog/internal/repository"
	"github.com/PS-gitpro/myblog/internal/validator"
)

// CommentService implements the comment workflows.
type CommentService struct {
	comments  repository.CommentRepository
	posts     repository.PostRepository
	users     repository.UserRepository
	mail      mailer.Mailer
	validator *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	users repository.UserRepository,
	mail mailer.Mailer,
	v *validator.Validator,
) *CommentService {
	return &CommentService{
		comments:  comments,
		posts:     posts,
		users:     users,
		mail:      mail,
		validator: v,
	}
}

// Add persists a comment on the post. Comments are approved by default.
// When the commenter is not the post's author, the author is notified
// by email; that dispatch is best-effort and can never fail the
// comment itself.
func (s *CommentService) Add(ctx context.Context, postID, authorID string, f *validator.CommentForm) (*domain.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}

	if err := s.validator.ValidateComment(f); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   f.Content,
		Approved:  true,
		CreatedAt: time.Now(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	metrics.CommentsCreatedTotal.Inc()

	// Commenting on your own post never notifies.
	if post.AuthorID != authorID {
		s.notifyPostAuthor(ctx, post, comment)
	}

	return comment, nil
}

// notifyPostAuthor emails the post author about the new comment.
// Everything in here, lookups included, is swallowed: the comment is
// already committed and a mail problem must not surface to the caller.
func (s *CommentService) notifyPostAuthor(ctx context.Context, post *domain.Post, comment *domain.Comment) {
	fail := func(stage string, err error) {
		metrics.MailDispatchTotal.WithLabelValues("comment_notification", "error").Inc()
		logger.Error("comment notification failed",
			slog.String("stage", stage),
			slog.String("post_id", post.ID),
			slog.String("comment_id", comment.ID),
			slog.String("error", err.Error()))
	}

	author, err := s.users.GetByID(ctx, post.AuthorID)
	if err != nil || author == nil {
		if err == nil {
			err = fmt.Errorf("post author %s not found", post.AuthorID)
		}
		fail("lookup_author", err)
		return
	}

	commenter, err := s.users.GetByID(ctx, comment.AuthorID)
	if err != nil || commenter == nil {
		if err == nil {
			err = fmt.Errorf("commenter %s not found", comment.AuthorID)
		}
		fail("lookup_commenter", err)
		return
	}

	msg := mailer.CommentNotification(author.Email, post.Title, commenter.Username, comment.Content)
	if err := s.mail.Send(msg); err != nil {
		fail("send", err)
		return
	}
	metrics.MailDispatchTotal.WithLabelValues("comment_notification", "ok").Inc()
}

// Unapproved lists comments awaiting moderation.
func (s *CommentService) Unapproved(ctx context.Context) ([]domain.Comment, error) {
	comments, err := s.comments.ListUnapproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unapproved comments: %w", err)
	}
	return comments, nil
}

// Approve marks the given comments approved and reports how many
// changed.
func (s *CommentService) Approve(ctx context.Context, ids []string) (int, error) {
	n, err := s.comments.Approve(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("approve comments: %w", err)
	}
	return n, nil
}
