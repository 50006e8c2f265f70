package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/contalibre/contalibre/internal/apperrors"
	"github.com/contalibre/contalibre/internal/core/domain"
	portsrepo "github.com/contalibre/contalibre/internal/core/ports/repositories"
	portssvc "github.com/contalibre/contalibre/internal/core/ports/services"
	"github.com/contalibre/contalibre/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount normalizes the name, validates the type and persists the account.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := domain.NormalizeAccountName(req.Name)
	if name == "" {
		err := fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
		s.LogWarn(ctx, "Rejected account with empty name")
		return nil, err
	}

	if !req.AccountType.IsValid() {
		err := fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, req.AccountType)
		s.LogWarn(ctx, "Rejected account with invalid type", slog.String("account_type", string(req.AccountType)))
		return nil, err
	}

	account := domain.Account{
		Name:        name,
		AccountType: req.AccountType,
	}

	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.Int64("account_id", saved.AccountID),
		slog.String("account_name", saved.Name),
		slog.String("account_type", string(saved.AccountType)))
	return saved, nil
}

// ListAccounts returns every account ordered by (type, name).
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// DeleteAccount removes an account unless journal entries still reference
// it. The usage check runs inside the repository's delete transaction.
func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		s.LogWarn(ctx, "Account not found for deletion", slog.Int64("account_id", accountID))
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Rejected deletion of in-use account",
				slog.Int64("account_id", accountID),
				slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", accountID))
		}
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.Int64("account_id", accountID))
	return nil
}

// ResolveIDByName looks an account up by its case-insensitive name.
func (s *accountService) ResolveIDByName(ctx context.Context, name string) (int64, error) {
	normalized := domain.NormalizeAccountName(name)
	if normalized == "" {
		return 0, fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByName(ctx, normalized)
	if err != nil {
		return 0, err
	}
	return account.AccountID, nil
}
