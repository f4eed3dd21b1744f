package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

var testUser = auth.User{ID: "1", Email: "admin@example.com", Name: "Admin User", Role: auth.RoleAdmin}

func TestJWTService_GenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	tokenString, expiresAt, err := svc.GenerateAccessToken(testUser)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1", claims["user_id"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
	assert.NotEmpty(t, token.JwtID())
}

func TestJWTService_RevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)
	tokenString, _, err := svc.GenerateAccessToken(testUser)
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)
	assert.False(t, svc.IsRevoked(token))

	require.NoError(t, svc.RevokeToken(tokenString))
	assert.True(t, svc.IsRevoked(token))

	other, _, err := svc.GenerateAccessToken(testUser)
	require.NoError(t, err)
	otherToken, err := jwtauth.VerifyToken(svc.JWTAuth(), other)
	require.NoError(t, err)
	assert.False(t, svc.IsRevoked(otherToken))
}

func TestJWTService_RevokeToken_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)
	assert.ErrorIs(t, svc.RevokeToken("not-a-token"), auth.ErrInvalidToken)
}

func TestJWTService_PurgeExpired(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)
	tokenString, _, err := svc.GenerateAccessToken(testUser)
	require.NoError(t, err)
	require.NoError(t, svc.RevokeToken(tokenString))

	assert.Equal(t, 0, svc.PurgeExpired(time.Now()))
	assert.Equal(t, 1, svc.PurgeExpired(time.Now().Add(2*time.Hour)))
}

func TestJWTService_SSEToken(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	tokenString, expiresIn, err := svc.GenerateSSEToken("2")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "2", userID)
}

func TestJWTService_SSEToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)
	access, _, err := svc.GenerateAccessToken(testUser)
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(access)
	assert.Error(t, err)
}
