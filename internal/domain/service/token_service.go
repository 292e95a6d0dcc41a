package service

// TokenService issues the opaque tokens carried by session cookies.
// Only the digest of a token is ever persisted.
type TokenService interface {
	// GenerateToken returns a new random token together with its digest.
	GenerateToken() (token string, digest string, err error)

	// Digest derives the stored lookup key for a token received from a client.
	Digest(token string) string
}
