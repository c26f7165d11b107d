package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecret(t *testing.T) string {
	t.Helper()
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	return base64.URLEncoding.EncodeToString(bytes)
}

func TestJwtService(t *testing.T) {
	// Setup
	secretKey := newSecret(t)
	issuer := "testIssuer"

	svc := NewJwtService(secretKey, issuer)

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		claims := map[string]interface{}{
			"operatorID": "4f1c2d3e-0000-0000-0000-000000000000",
			"username":   "maze_runner",
		}

		token, err := svc.Generate(claims, 5*time.Minute)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		decoded, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "maze_runner", decoded["username"])
		assert.Equal(t, issuer, decoded["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"username": "maze_runner"}, -time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Claims cannot override issuer", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"iss": "someone-else"}, time.Minute)
		require.NoError(t, err)

		decoded, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, issuer, decoded["iss"])
	})

	t.Run("Reject other issuer", func(t *testing.T) {
		other := NewJwtService(secretKey, "otherIssuer")
		token, err := other.Generate(map[string]interface{}{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrIssuerMismatch)
	})

	t.Run("Reject other secret", func(t *testing.T) {
		other := NewJwtService(newSecret(t), issuer)
		token, err := other.Generate(map[string]interface{}{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})
}
