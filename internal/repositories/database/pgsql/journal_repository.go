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

type journalRepository struct {
	BaseRepository
}

// newJournalRepository creates a new repository for journal entries.
func newJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &journalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure journalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

// SaveEntry inserts a new journal entry and returns it with the assigned ID.
func (r *journalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	query := `
		INSERT INTO journal_entries (created_at, description, debit_account_id, credit_account_id, amount, document_ref, bank_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING entry_id;
	`

	modelEntry := mapping.ToModelJournalEntry(entry)
	err := r.Pool.QueryRow(ctx, query,
		modelEntry.CreatedAt,
		modelEntry.Description,
		modelEntry.DebitAccountID,
		modelEntry.CreditAccountID,
		modelEntry.Amount,
		modelEntry.DocumentRef,
		modelEntry.BankRef,
	).Scan(&modelEntry.EntryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation
			return nil, fmt.Errorf("%w: entry references a missing account", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	saved := mapping.ToDomainJournalEntry(modelEntry)
	return &saved, nil
}

// FindEntryByID retrieves a journal entry by its ID.
func (r *journalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, created_at, description, debit_account_id, credit_account_id, amount, document_ref, bank_ref
		FROM journal_entries
		WHERE entry_id = $1;
	`

	var modelEntry models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&modelEntry.EntryID,
		&modelEntry.CreatedAt,
		&modelEntry.Description,
		&modelEntry.DebitAccountID,
		&modelEntry.CreditAccountID,
		&modelEntry.Amount,
		&modelEntry.DocumentRef,
		&modelEntry.BankRef,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %d", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("failed to find journal entry %d: %w", entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(modelEntry)
	return &entry, nil
}

// ListEntries retrieves the journal book: every entry joined with the names
// of both legs, newest first.
func (r *journalRepository) ListEntries(ctx context.Context) ([]domain.JournalEntryDetail, error) {
	query := `
		SELECT e.entry_id, e.created_at, e.description, e.debit_account_id, e.credit_account_id, e.amount, e.document_ref, e.bank_ref,
			d.name AS debit_account_name,
			c.name AS credit_account_name
		FROM journal_entries e
		JOIN accounts d ON e.debit_account_id = d.account_id
		JOIN accounts c ON e.credit_account_id = c.account_id
		ORDER BY e.created_at DESC, e.entry_id DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntryDetail
	for rows.Next() {
		var modelEntry models.JournalEntry
		var debitName, creditName string
		if err := rows.Scan(
			&modelEntry.EntryID,
			&modelEntry.CreatedAt,
			&modelEntry.Description,
			&modelEntry.DebitAccountID,
			&modelEntry.CreditAccountID,
			&modelEntry.Amount,
			&modelEntry.DocumentRef,
			&modelEntry.BankRef,
			&debitName,
			&creditName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, domain.JournalEntryDetail{
			JournalEntry:      mapping.ToDomainJournalEntry(modelEntry),
			DebitAccountName:  debitName,
			CreditAccountName: creditName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	if entries == nil {
		entries = []domain.JournalEntryDetail{}
	}
	return entries, nil
}

// ListMovementsForAccount retrieves entries touching the account as either
// leg, oldest first, feeding the running ledger walk.
func (r *journalRepository) ListMovementsForAccount(ctx context.Context, accountID int64) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, created_at, description, debit_account_id, credit_account_id, amount, document_ref, bank_ref
		FROM journal_entries
		WHERE debit_account_id = $1 OR credit_account_id = $1
		ORDER BY created_at ASC, entry_id ASC;
	`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for account %d: %w", accountID, err)
	}
	defer rows.Close()

	var movements []domain.JournalEntry
	for rows.Next() {
		var modelEntry models.JournalEntry
		if err := rows.Scan(
			&modelEntry.EntryID,
			&modelEntry.CreatedAt,
			&modelEntry.Description,
			&modelEntry.DebitAccountID,
			&modelEntry.CreditAccountID,
			&modelEntry.Amount,
			&modelEntry.DocumentRef,
			&modelEntry.BankRef,
		); err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		movements = append(movements, mapping.ToDomainJournalEntry(modelEntry))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", err)
	}

	if movements == nil {
		movements = []domain.JournalEntry{}
	}
	return movements, nil
}

// DeleteEntry removes a journal entry by ID.
func (r *journalRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	query := `DELETE FROM journal_entries WHERE entry_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %d: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %d", apperrors.ErrNotFound, entryID)
	}
	return nil
}
