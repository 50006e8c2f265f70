package pgsql

import (
	portsrepo "github.com/contalibre/contalibre/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository over the shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:   newAccountRepository(pool),
		JournalRepo:   newJournalRepository(pool),
		ReportingRepo: newReportingRepository(pool),
	}
}
