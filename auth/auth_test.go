package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-system/auth"
)

func TestPassword(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	t.Run("round trip", func(t *testing.T) {
		assert.True(t, auth.VerifyPassword(hash, "correct horse battery staple"))
	})

	t.Run("wrong plaintext", func(t *testing.T) {
		assert.False(t, auth.VerifyPassword(hash, "wrong password"))
	})

	t.Run("garbage hash", func(t *testing.T) {
		assert.False(t, auth.VerifyPassword("not-a-bcrypt-hash", "anything"))
	})
}

func TestToken(t *testing.T) {
	t.Parallel()

	const secret = "test-secret"
	claims := auth.Claims{ID: 42, Username: "amy"}

	token, err := auth.IssueToken(secret, claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	t.Run("round trip", func(t *testing.T) {
		got, err := auth.VerifyToken(secret, token)
		require.NoError(t, err)
		assert.Equal(t, claims, got)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := auth.VerifyToken("other-secret", token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"id":       int64(42),
			"username": "amy",
			"exp":      time.Now().Add(-time.Hour).Unix(),
		})
		signed, err := expired.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = auth.VerifyToken(secret, signed)
		assert.Error(t, err)
	})

	t.Run("wrong signing method", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"id":       int64(42),
			"username": "amy",
		})
		signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = auth.VerifyToken(secret, signed)
		assert.Error(t, err)
	})
}
