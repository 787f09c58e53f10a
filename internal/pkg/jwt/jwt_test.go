package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, expiresAt, err := svc.GenerateAccessToken("payroll-admin", time.Hour)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)
	assert.Equal(t, "payroll-admin", parsed.Subject())

	tokenType, ok := parsed.Get("type")
	require.True(t, ok)
	assert.Equal(t, TokenTypeAccess, tokenType)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("one").GenerateAccessToken("x", time.Hour)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(NewJWTService("two").JWTAuth(), token)
	assert.Error(t, err)
}
