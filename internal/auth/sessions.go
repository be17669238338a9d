// Package auth implements the authentication collaborators: password
// hashing and server-side cookie sessions backed by the sessions table.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/PS-gitpro/myblog/internal/domain"
	"github.com/PS-gitpro/myblog/internal/repository"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "myblog_session"

// Sessions manages login sessions. Session state lives in the database
// so a logout invalidates the session everywhere immediately; the
// cookie only carries an opaque ID.
type Sessions struct {
	repo repository.SessionRepository
	ttl  time.Duration
}

// NewSessions creates a session manager with the given TTL.
func NewSessions(repo repository.SessionRepository, ttl time.Duration) *Sessions {
	return &Sessions{repo: repo, ttl: ttl}
}

// Issue creates a session for the user and sets the session cookie.
func (s *Sessions) Issue(ctx context.Context, w http.ResponseWriter, userID string) error {
	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})
	return nil
}

// Resolve returns the user ID of the session referenced by the request
// cookie, or false when there is no valid session.
func (s *Sessions) Resolve(ctx context.Context, r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return "", false
	}

	session, err := s.repo.Get(ctx, c.Value)
	if err != nil || session == nil || session.Expired(time.Now()) {
		return "", false
	}
	return session.UserID, true
}

// Destroy deletes the request's session and expires the cookie.
func (s *Sessions) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var deleteErr error
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		deleteErr = s.repo.Delete(ctx, c.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
	return deleteErr
}
