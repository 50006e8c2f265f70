package repositories

import (
	"context"

	"github.com/contalibre/contalibre/internal/core/domain"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindEntryByID retrieves a specific entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// ListEntries retrieves all entries joined with their account names,
	// ordered by creation time descending.
	ListEntries(ctx context.Context) ([]domain.JournalEntryDetail, error)

	// ListMovementsForAccount retrieves all entries touching the account as
	// either leg, ordered by creation time ascending.
	ListMovementsForAccount(ctx context.Context, accountID int64) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal entries
type JournalWriter interface {
	// SaveEntry persists a new entry and returns it with its assigned ID.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)

	// DeleteEntry removes an entry by ID.
	DeleteEntry(ctx context.Context, entryID int64) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
