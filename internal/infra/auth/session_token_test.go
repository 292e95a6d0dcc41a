package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenService_GenerateToken(t *testing.T) {
	svc := NewSessionTokenService()

	token, digest, err := svc.GenerateToken()
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, sessionTokenBytes)
	assert.Len(t, digest, 64)
	assert.Equal(t, svc.Digest(token), digest)
	assert.NotEqual(t, token, digest)
}

func TestSessionTokenService_TokensAreUnique(t *testing.T) {
	svc := NewSessionTokenService()
	seen := make(map[string]struct{})

	for range 100 {
		token, _, err := svc.GenerateToken()
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
}

func TestSessionTokenService_DigestIsStable(t *testing.T) {
	svc := NewSessionTokenService()

	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", svc.Digest("abc"))
	assert.NotEqual(t, svc.Digest("abc"), svc.Digest("abd"))
}
