package usecase

import (
	"context"
	"time"

	"recipebox/internal/domain/entity"
)

// EstablishOutput is the freshly issued session and the token for its cookie.
type EstablishOutput struct {
	Session *entity.Session
	Token   string
}

// SessionUsecase manages the server-side session behind the session cookie.
type SessionUsecase interface {
	// Load resolves a cookie token. Unknown, expired or empty tokens return (nil, nil).
	Load(ctx context.Context, token string) (*entity.Session, error)

	// Establish issues a new session for userID and deletes current, if any.
	Establish(ctx context.Context, current *entity.Session, userID uint) (*EstablishOutput, error)

	// Clear deletes the session so its token no longer resolves.
	Clear(ctx context.Context, session *entity.Session) error

	// CleanupExpired deletes expired sessions and reports how many were removed.
	CleanupExpired(ctx context.Context) (int64, error)

	// TTL is how long a newly issued session lives.
	TTL() time.Duration
}
