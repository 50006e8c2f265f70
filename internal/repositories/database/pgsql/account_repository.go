package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/contalibre/contalibre/internal/apperrors"
	"github.com/contalibre/contalibre/internal/core/domain"
	portsrepo "github.com/contalibre/contalibre/internal/core/ports/repositories"
	"github.com/contalibre/contalibre/internal/models"
	"github.com/contalibre/contalibre/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type accountRepository struct {
	BaseRepository
}

// newAccountRepository creates a new repository for account data.
func newAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &accountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure accountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

// SaveAccount inserts a new account and returns it with the assigned ID.
func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (name, account_type)
		VALUES ($1, $2)
		RETURNING account_id, created_at;
	`

	modelAcc := mapping.ToModelAccount(account)
	err := r.Pool.QueryRow(ctx, query, modelAcc.Name, modelAcc.AccountType).
		Scan(&modelAcc.AccountID, &modelAcc.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return nil, fmt.Errorf("%w: account named %q already exists", apperrors.ErrDuplicate, modelAcc.Name)
		}
		return nil, fmt.Errorf("failed to save account %q: %w", modelAcc.Name, err)
	}

	saved := mapping.ToDomainAccount(modelAcc)
	return &saved, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT account_id, name, account_type, created_at
		FROM accounts
		WHERE account_id = $1;
	`

	var modelAcc models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.AccountType,
		&modelAcc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}

	account := mapping.ToDomainAccount(modelAcc)
	return &account, nil
}

// FindAccountByName retrieves an account by its normalized name.
func (r *accountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	query := `
		SELECT account_id, name, account_type, created_at
		FROM accounts
		WHERE name = $1;
	`

	var modelAcc models.Account
	err := r.Pool.QueryRow(ctx, query, name).Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.AccountType,
		&modelAcc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account named %q", apperrors.ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to find account %q: %w", name, err)
	}

	account := mapping.ToDomainAccount(modelAcc)
	return &account, nil
}

// FindAccountsByIDs retrieves multiple accounts keyed by ID.
func (r *accountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}

	query := `
		SELECT account_id, name, account_type, created_at
		FROM accounts
		WHERE account_id = ANY($1);
	`

	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	accounts := make(map[int64]domain.Account, len(accountIDs))
	for rows.Next() {
		var modelAcc models.Account
		if err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.Name,
			&modelAcc.AccountType,
			&modelAcc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[modelAcc.AccountID] = mapping.ToDomainAccount(modelAcc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return accounts, nil
}

// ListAccounts retrieves all accounts ordered by (type, name).
func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_id, name, account_type, created_at
		FROM accounts
		ORDER BY account_type, name;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var modelAccs []models.Account
	for rows.Next() {
		var modelAcc models.Account
		if err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.Name,
			&modelAcc.AccountType,
			&modelAcc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		modelAccs = append(modelAccs, modelAcc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return mapping.ToDomainAccountSlice(modelAccs), nil
}

// DeleteAccount removes an account by ID. The journal reference check and
// the delete run in one transaction so an entry recorded between them cannot
// orphan its account; the foreign keys remain the final backstop.
func (r *accountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	countQuery := `
		SELECT COUNT(*)
		FROM journal_entries
		WHERE debit_account_id = $1 OR credit_account_id = $1;
	`
	var refs int64
	if err := tx.QueryRow(ctx, countQuery, accountID).Scan(&refs); err != nil {
		return fmt.Errorf("failed to count entries referencing account %d: %w", accountID, err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: account is referenced by %d journal entries", apperrors.ErrConflict, refs)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation
			return fmt.Errorf("%w: account %d is referenced by journal entries", apperrors.ErrConflict, accountID)
		}
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
	}

	return r.Commit(ctx, tx)
}
