package domain

import "time"

// Session is a server-side login session referenced by an opaque
// cookie value. Expired sessions are treated as absent.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
