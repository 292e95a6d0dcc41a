package entity

import "time"

// Session is a server-side browser session. It carries at most one authenticated user.
type Session struct {
	ID        uint
	TokenHash string // SHA-256 of the cookie token; the raw token is never stored.
	UserID    *uint  // nil while nobody is logged in.
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAuthenticated reports whether a user identity is attached.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != nil
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
