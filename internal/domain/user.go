package domain

import "time"

// User represents a registered account. Password hashing and session
// state are handled by the auth package; the domain only carries the
// stored hash.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRoles contains all valid user roles.
var ValidRoles = []string{"admin", "user"}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user may access moderation routes.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
