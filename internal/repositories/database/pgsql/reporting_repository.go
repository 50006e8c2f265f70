package pgsql

import (
	"context"
	"fmt"

	"github.com/contalibre/contalibre/internal/core/domain"
	portsrepo "github.com/contalibre/contalibre/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetAccountBalances computes net balance = total debits - total credits per
// account with two grouped aggregations over the journal. Accounts with no
// entries appear with a zero balance.
func (r *reportingRepository) GetAccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	query := `
		SELECT
			a.account_id,
			a.name,
			a.account_type,
			COALESCE(d.total, 0) - COALESCE(c.total, 0) AS net_balance
		FROM accounts a
		LEFT JOIN (
			SELECT debit_account_id, SUM(amount) AS total
			FROM journal_entries
			GROUP BY debit_account_id
		) d ON d.debit_account_id = a.account_id
		LEFT JOIN (
			SELECT credit_account_id, SUM(amount) AS total
			FROM journal_entries
			GROUP BY credit_account_id
		) c ON c.credit_account_id = a.account_id
		ORDER BY a.account_type, a.name;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying account balances: %w", err)
	}
	defer rows.Close()

	var result []domain.AccountBalance
	for rows.Next() {
		var balance domain.AccountBalance
		var accountType string

		if err := rows.Scan(
			&balance.AccountID,
			&balance.AccountName,
			&accountType,
			&balance.NetBalance,
		); err != nil {
			return nil, fmt.Errorf("error scanning account balance row: %w", err)
		}

		balance.AccountType = domain.AccountType(accountType)
		result = append(result, balance)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account balance rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.AccountBalance{}, nil
	}

	return result, nil
}
