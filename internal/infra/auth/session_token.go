package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"recipebox/internal/domain/service"

	"github.com/pkg/errors"
)

// sessionTokenBytes is the amount of entropy in a session token.
const sessionTokenBytes = 32

// sessionTokenService produces URL-safe random tokens and their SHA-256 digests.
type sessionTokenService struct{}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService() service.TokenService {
	return &sessionTokenService{}
}

func (s *sessionTokenService) GenerateToken() (string, string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes")
	}

	token := base64.RawURLEncoding.EncodeToString(buf)

	return token, s.Digest(token), nil
}

func (s *sessionTokenService) Digest(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
