package repository

import (
	"context"
	"errors"
	"time"

	"recipebox/internal/domain/entity"
)

// ErrSessionNotFound is returned when no live session matches a token hash.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores server-side sessions.
type SessionRepository interface {
	// FindByTokenHash returns the unexpired session for tokenHash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// Delete removes a session so its token stops resolving.
	Delete(ctx context.Context, sessionID uint) error

	// DeleteExpired removes sessions that expired before now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
