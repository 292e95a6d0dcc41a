// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"recipebox/config"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher with the configured cost, falling back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost clamps cost into bcrypt's accepted range.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) ([]byte, error) {
	secret, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if err == bcrypt.ErrPasswordTooLong {
			return nil, domainerrors.ErrPasswordUnusable.WrapMessage("password exceeds 72 bytes")
		}

		return nil, err
	}

	return secret, nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(secret []byte, password string) bool {
	if len(secret) == 0 {
		return false
	}

	return bcrypt.CompareHashAndPassword(secret, []byte(password)) == nil
}
