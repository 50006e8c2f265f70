package repositories

import (
	"context"

	"github.com/contalibre/contalibre/internal/core/domain"
)

// ReportingRepository defines the read operations backing the balance engine.
type ReportingRepository interface {
	// GetAccountBalances computes the net balance (total debits minus total
	// credits) for every account, including accounts with no entries, ordered
	// by (type, name).
	GetAccountBalances(ctx context.Context) ([]domain.AccountBalance, error)
}
