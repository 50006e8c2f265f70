package services

import (
	"context"

	"github.com/contalibre/contalibre/internal/core/domain"
	"github.com/contalibre/contalibre/internal/dto"
)

// JournalSvc defines the operations of the double-entry journal.
type JournalSvc interface {
	// RecordEntry validates and persists a new journal entry. Rejected with
	// ErrValidation when the legs reference the same account, the amount is
	// not strictly positive, or either account does not exist.
	RecordEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error)

	// ListEntries returns the journal book: every entry joined with its
	// account names, newest first.
	ListEntries(ctx context.Context) ([]domain.JournalEntryDetail, error)

	// DeleteEntry removes an entry by ID. Fails with ErrNotFound when absent.
	DeleteEntry(ctx context.Context, entryID int64) error
}

// JournalSvcFacade is the full journal service surface.
type JournalSvcFacade interface {
	JournalSvc
}
