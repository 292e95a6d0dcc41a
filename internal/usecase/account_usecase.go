// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"recipebox/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Username string
	Password string
	Bio      *string
	ImageURL *string
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
}

// AccountUsecase covers signing up, logging in and resolving the current user.
type AccountUsecase interface {
	// Signup creates a user with a hashed password. A taken username yields ErrUsernameTaken
	// and nothing is stored.
	Signup(ctx context.Context, input SignupInput) (*entity.User, error)

	// Login returns the user whose credentials match. Unknown usernames and wrong
	// passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, input LoginInput) (*entity.User, error)

	// CurrentUser resolves a session's user id, failing with ErrNotAuthorized when it no longer exists.
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
}
