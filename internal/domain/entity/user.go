// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"recipebox/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrWriteOnlyAttribute is returned for every attempt to read a user's password.
var ErrWriteOnlyAttribute = errors.New("password is not a readable attribute")

// User is an account that can log in and own recipes.
type User struct {
	ID        uint      // Assigned by the database on creation.
	Username  string    // Unique login name.
	Bio       *string   // Optional free text.
	ImageURL  *string   // Optional avatar location.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.

	passwordSecret []byte
}

// Password always fails: the plaintext is never kept and the secret is not readable through it.
func (u *User) Password() (string, error) {
	return "", ErrWriteOnlyAttribute
}

// SetPassword hashes plain and keeps only the resulting secret.
func (u *User) SetPassword(hasher service.PasswordHasher, plain string) error {
	secret, err := hasher.Hash(plain)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	u.passwordSecret = secret

	return nil
}

// RestorePasswordSecret attaches an already hashed secret, e.g. one loaded from storage.
// The value is stored unchanged.
func (u *User) RestorePasswordSecret(secret []byte) {
	u.passwordSecret = secret
}

// PasswordSecret exposes the stored secret to the persistence mapper only.
// Views and handlers must never call it.
func (u *User) PasswordSecret() []byte {
	return u.passwordSecret
}

// HasPassword reports whether a secret has been set.
func (u *User) HasPassword() bool {
	return len(u.passwordSecret) > 0
}

// Authenticate reports whether plain matches the stored secret.
// A user without a secret never authenticates.
func (u *User) Authenticate(hasher service.PasswordHasher, plain string) bool {
	if !u.HasPassword() {
		return false
	}

	return hasher.Check(u.passwordSecret, plain)
}
