package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsAuthenticated(t *testing.T) {
	var missing *Session
	userID := uint(1)

	assert.False(t, missing.IsAuthenticated())
	assert.False(t, (&Session{}).IsAuthenticated())
	assert.True(t, (&Session{UserID: &userID}).IsAuthenticated())
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	assert.True(t, (&Session{ExpiresAt: now}).Expired(now))
	assert.True(t, (&Session{ExpiresAt: now.Add(-time.Second)}).Expired(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Second)}).Expired(now))
}
