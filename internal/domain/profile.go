package domain

import "time"

// DefaultAvatar is the placeholder image reference assigned to new profiles.
const DefaultAvatar = "avatars/default.png"

// Profile holds the optional per-user public information. Exactly one
// profile exists per user; it is created together with the account and
// removed by the user cascade.
type Profile struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Bio       string     `json:"bio"`
	Location  string     `json:"location"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Avatar    string     `json:"avatar"`
	UpdatedAt time.Time  `json:"updated_at"`
}
