package services_test

import (
	"context"
	"testing"

	"github.com/contalibre/contalibre/internal/apperrors"
	"github.com/contalibre/contalibre/internal/core/services"
	"github.com/contalibre/contalibre/internal/dto"
	"github.com/contalibre/contalibre/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryMinutes:  30,
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}
}

func TestLogin_Success(t *testing.T) {
	cfg := newTestAuthConfig(t, "correct-horse")
	svc := services.NewAuthService(cfg)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "correct-horse"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.ExpiresAt.IsZero())

	// The token is verifiable with the configured secret and carries the operator as subject
	parsed, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, "admin", claims.Subject)
}

func TestLogin_WrongUsername(t *testing.T) {
	cfg := newTestAuthConfig(t, "correct-horse")
	svc := services.NewAuthService(cfg)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "root", Password: "correct-horse"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	cfg := newTestAuthConfig(t, "correct-horse")
	svc := services.NewAuthService(cfg)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "battery-staple"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
