package services

import (
	"context"

	"github.com/contalibre/contalibre/internal/core/domain"
	"github.com/contalibre/contalibre/internal/dto"
)

// AccountSvc defines the operations of the account registry.
type AccountSvc interface {
	// CreateAccount normalizes the name, validates the type and persists a
	// new account. Fails with ErrDuplicate on a normalized-name collision.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// ListAccounts returns every account ordered by (type, name).
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// DeleteAccount removes an account. Fails with ErrConflict while any
	// journal entry still references the account as either leg.
	DeleteAccount(ctx context.Context, accountID int64) error

	// ResolveIDByName looks an account up by its case-insensitive name.
	ResolveIDByName(ctx context.Context, name string) (int64, error)
}

// AccountSvcFacade is the full account service surface.
type AccountSvcFacade interface {
	AccountSvc
}
