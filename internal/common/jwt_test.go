package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "user-123", "ravi")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "ravi", claims.Handle)
	assert.Equal(t, "movieplus", claims.Issuer)
}

func TestValidToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("right-secret"), "user-123", "ravi")
	require.NoError(t, err)

	_, err = ValidToken([]byte("wrong-secret"), token)
	assert.Error(t, err)
}

func TestValidToken_Garbage(t *testing.T) {
	_, err := ValidToken([]byte("secret"), "not.a.token")
	assert.Error(t, err)
}
