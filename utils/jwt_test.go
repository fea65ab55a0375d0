package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	tokenStr, err := GenerateToken(7, "manager", secret, time.Hour)
	require.NoError(t, err)

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(tok *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "manager", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateTokenRejectsWrongSecret(t *testing.T) {
	tokenStr, err := GenerateToken(1, "cashier", "right-secret", time.Hour)
	require.NoError(t, err)

	var claims Claims
	_, err = jwt.ParseWithClaims(tokenStr, &claims, func(tok *jwt.Token) (any, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
