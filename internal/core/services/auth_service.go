package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/contalibre/contalibre/internal/apperrors"
	portssvc "github.com/contalibre/contalibre/internal/core/ports/services"
	"github.com/contalibre/contalibre/internal/dto"
	"github.com/contalibre/contalibre/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService implements the AuthSvc interface for the single configured
// operator credential.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{cfg: cfg}
}

// Ensure authService implements the AuthSvc interface
var _ portssvc.AuthSvc = (*authService)(nil)

// Login verifies the operator credential and issues a signed HS256 token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != s.cfg.AdminUsername {
		s.LogWarn(ctx, "Login attempt with unknown username", slog.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		s.LogWarn(ctx, "Login attempt with wrong password", slog.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(s.cfg.JWTExpiryMinutes) * time.Minute)
	claims := jwt.RegisteredClaims{
		Subject:   req.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "Operator logged in", slog.String("username", req.Username))
	return &dto.LoginResponse{Token: signed, ExpiresAt: expiresAt}, nil
}
