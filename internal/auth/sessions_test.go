package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PS-gitpro/myblog/internal/domain"
)

// memSessionRepo is an in-memory SessionRepository for tests.
type memSessionRepo struct {
	sessions map[string]domain.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]domain.Session)}
}

func (m *memSessionRepo) Create(_ context.Context, s *domain.Session) error {
	m.sessions[s.ID] = *s
	return nil
}

func (m *memSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memSessionRepo) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *memSessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	var n int64
	for id, s := range m.sessions {
		if s.Expired(time.Now()) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestSessionsIssueAndResolve(t *testing.T) {
	repo := newMemSessionRepo()
	sessions := NewSessions(repo, time.Hour)
	ctx := context.Background()

	w := httptest.NewRecorder()
	require.NoError(t, sessions.Issue(ctx, w, "user-1"))

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	userID, ok := sessions.Resolve(ctx, req)
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)
}

func TestSessionsResolveWithoutCookie(t *testing.T) {
	sessions := NewSessions(newMemSessionRepo(), time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := sessions.Resolve(context.Background(), req)
	assert.False(t, ok)
}

func TestSessionsResolveExpired(t *testing.T) {
	repo := newMemSessionRepo()
	sessions := NewSessions(repo, -time.Minute)
	ctx := context.Background()

	w := httptest.NewRecorder()
	require.NoError(t, sessions.Issue(ctx, w, "user-1"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, w))

	_, ok := sessions.Resolve(ctx, req)
	assert.False(t, ok)
}

func TestSessionsDestroy(t *testing.T) {
	repo := newMemSessionRepo()
	sessions := NewSessions(repo, time.Hour)
	ctx := context.Background()

	w := httptest.NewRecorder()
	require.NoError(t, sessions.Issue(ctx, w, "user-1"))
	cookie := sessionCookie(t, w)

	req := httptest.NewRequest(http.MethodPost, "/logout/", nil)
	req.AddCookie(cookie)

	w2 := httptest.NewRecorder()
	require.NoError(t, sessions.Destroy(ctx, w2, req))

	// Session row is gone; the old cookie no longer resolves.
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookie)
	_, ok := sessions.Resolve(ctx, req2)
	assert.False(t, ok)

	expired := sessionCookie(t, w2)
	assert.Empty(t, expired.Value)
}
