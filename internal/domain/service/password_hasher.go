// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted one-way secret from a plaintext password.
	Hash(password string) ([]byte, error)

	// Check reports whether password produces secret. An empty secret never matches.
	Check(secret []byte, password string) bool
}
