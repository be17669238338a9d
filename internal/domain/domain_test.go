package domain

import (
	"testing"
	"time"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"admin", true},
		{"user", true},
		{"moderator", false},
		{"", false},
		{"Admin", false},
	}

	for _, tt := range tests {
		if got := IsValidRole(tt.role); got != tt.want {
			t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestUserIsAdmin(t *testing.T) {
	u := &User{Role: "user"}
	if u.IsAdmin() {
		t.Error("regular user reported as admin")
	}
	u.Role = "admin"
	if !u.IsAdmin() {
		t.Error("admin user not reported as admin")
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Hour)}
	if s.Expired(now) {
		t.Error("session expired before its expiry time")
	}
	if !s.Expired(now.Add(2 * time.Hour)) {
		t.Error("session not expired after its expiry time")
	}
}
