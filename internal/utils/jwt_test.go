package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	secret := []byte("test-secret")

	signed, jti, err := GenerateToken(42, secret)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, jti)

	claims, err := VerifyToken(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, jti.String(), claims.ID)

	userID, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	signed, _, err := GenerateToken(1, []byte("secret-a"))
	require.NoError(t, err)

	_, err = VerifyToken(signed, []byte("secret-b"))
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := VerifyToken("not.a.token", []byte("secret"))
	assert.Error(t, err)
}

func TestEachTokenGetsFreshJTI(t *testing.T) {
	secret := []byte("secret")

	_, a, err := GenerateToken(1, secret)
	require.NoError(t, err)
	_, b, err := GenerateToken(1, secret)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
