package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/contalibre/contalibre/internal/apperrors"
	"github.com/contalibre/contalibre/internal/core/domain"
	portsrepo "github.com/contalibre/contalibre/internal/core/ports/repositories"
	portssvc "github.com/contalibre/contalibre/internal/core/ports/services"
	"github.com/contalibre/contalibre/internal/dto"
)

// journalService implements the JournalSvcFacade interface
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// NewJournalService creates a new journal service with the provided options
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure journalService implements the JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// RecordEntry validates and persists a new journal entry.
// The validation order mirrors the rejection set: same-account first, then
// non-positive amount, then unknown accounts; nothing is persisted on failure.
func (s *journalService) RecordEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		err := fmt.Errorf("%w: description must not be empty", apperrors.ErrValidation)
		s.LogWarn(ctx, "Rejected entry with empty description")
		return nil, err
	}

	if req.DebitAccountID == req.CreditAccountID {
		err := fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
		s.LogWarn(ctx, "Rejected entry with identical legs", slog.Int64("account_id", req.DebitAccountID))
		return nil, err
	}

	if !req.Amount.IsPositive() {
		err := fmt.Errorf("%w: amount must be greater than zero, got %s", apperrors.ErrValidation, req.Amount)
		s.LogWarn(ctx, "Rejected entry with non-positive amount", slog.String("amount", req.Amount.String()))
		return nil, err
	}

	accountIDs := []int64{req.DebitAccountID, req.CreditAccountID}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for entry validation")
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			err := fmt.Errorf("%w: account %d does not exist", apperrors.ErrValidation, id)
			s.LogWarn(ctx, "Rejected entry referencing unknown account", slog.Int64("account_id", id))
			return nil, err
		}
	}

	entry := domain.JournalEntry{
		CreatedAt:       time.Now(),
		Description:     description,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Amount:          req.Amount,
		DocumentRef:     strings.TrimSpace(req.DocumentRef),
		BankRef:         strings.TrimSpace(req.BankRef),
	}

	saved, err := s.journalRepo.SaveEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save journal entry")
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry recorded",
		slog.Int64("entry_id", saved.EntryID),
		slog.Int64("debit_account_id", saved.DebitAccountID),
		slog.Int64("credit_account_id", saved.CreditAccountID),
		slog.String("amount", saved.Amount.String()))
	return saved, nil
}

// ListEntries returns the journal book view, newest first.
func (s *journalService) ListEntries(ctx context.Context) ([]domain.JournalEntryDetail, error) {
	entries, err := s.journalRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry removes an entry by ID.
func (s *journalService) DeleteEntry(ctx context.Context, entryID int64) error {
	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogWarn(ctx, "Failed to delete journal entry",
			slog.Int64("entry_id", entryID),
			slog.String("error", err.Error()))
		return err
	}

	s.LogInfo(ctx, "Journal entry deleted", slog.Int64("entry_id", entryID))
	return nil
}
