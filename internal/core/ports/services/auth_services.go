package services

import (
	"context"

	"github.com/contalibre/contalibre/internal/dto"
)

// AuthSvc defines authentication for the single configured operator.
type AuthSvc interface {
	// Login verifies the configured admin credential and returns a signed
	// JWT. Fails with ErrUnauthorized on a bad username or password.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
