package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret", 20*time.Minute)

	token, err := tokens.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := tokens.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestTokenExpired(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Minute)

	token, err := tokens.Issue(42)
	assert.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenInvalid(t *testing.T) {
	tokens := NewTokenService("test-secret", 20*time.Minute)

	t.Run("Garbage", func(t *testing.T) {
		_, err := tokens.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := NewTokenService("other-secret", 20*time.Minute)
		token, err := other.Issue(42)
		assert.NoError(t, err)

		_, err = tokens.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Tampered", func(t *testing.T) {
		token, err := tokens.Issue(42)
		assert.NoError(t, err)

		_, err = tokens.Verify(token + "x")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
