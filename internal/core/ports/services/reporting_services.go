package services

import (
	"context"

	"github.com/contalibre/contalibre/internal/core/domain"
)

// ReportingService defines the balance engine: purely derivational reads
// recomputed from the journal on every call.
type ReportingService interface {
	// ComputeBalances returns the net balance of every account.
	ComputeBalances(ctx context.Context) ([]domain.AccountBalance, error)

	// RunningLedger returns an account's chronological movements with a
	// running balance accumulated on the account's natural side.
	RunningLedger(ctx context.Context, accountID int64) (*domain.AccountLedger, error)

	// TrialBalance returns every non-zero account split into debit/credit
	// columns with totals and the balanced self-check flag.
	TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error)

	// IncomeStatement summarizes revenue against expenses.
	IncomeStatement(ctx context.Context) (*domain.IncomeStatementReport, error)

	// BalanceSheet states the accounting equation as of now.
	BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error)
}
