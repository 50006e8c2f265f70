package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/contalibre/contalibre/internal/core/domain"
	portsrepo "github.com/contalibre/contalibre/internal/core/ports/repositories"
	portssvc "github.com/contalibre/contalibre/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface.
// It owns no state of its own: every report is recomputed from the account
// registry and the journal on each call.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
	journalRepo   portsrepo.JournalReader
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
		journalRepo:   journalRepo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// ComputeBalances returns the net balance of every account.
func (s *reportingService) ComputeBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	balances, err := s.reportingRepo.GetAccountBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute account balances")
		return nil, fmt.Errorf("failed to compute account balances: %w", err)
	}
	return balances, nil
}

// RunningLedger walks an account's movements in chronological order and
// accumulates the running balance on the account's natural side: credit
// minus debit for LIABILITY/EQUITY/REVENUE, debit minus credit otherwise.
func (s *reportingService) RunningLedger(ctx context.Context, accountID int64) (*domain.AccountLedger, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogWarn(ctx, "Account not found for ledger", slog.Int64("account_id", accountID))
		return nil, err
	}

	movements, err := s.journalRepo.ListMovementsForAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account movements", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to list account movements: %w", err)
	}

	creditNatural := account.AccountType.IsCreditNatural()
	balance := decimal.Zero
	lines := make([]domain.LedgerLine, 0, len(movements))
	for _, m := range movements {
		debit := decimal.Zero
		credit := decimal.Zero
		if m.DebitAccountID == accountID {
			debit = m.Amount
		}
		if m.CreditAccountID == accountID {
			credit = m.Amount
		}

		if creditNatural {
			balance = balance.Add(credit.Sub(debit))
		} else {
			balance = balance.Add(debit.Sub(credit))
		}

		lines = append(lines, domain.LedgerLine{
			EntryID:     m.EntryID,
			Date:        m.CreatedAt,
			Description: m.Description,
			Debit:       debit,
			Credit:      credit,
			Balance:     balance,
		})
	}

	s.LogInfo(ctx, "Running ledger generated",
		slog.Int64("account_id", accountID),
		slog.Int("line_count", len(lines)))
	return &domain.AccountLedger{
		AccountID:   account.AccountID,
		AccountName: account.Name,
		AccountType: account.AccountType,
		Lines:       lines,
		Balance:     balance,
	}, nil
}

// TrialBalance splits every non-zero net balance into debit/credit columns.
// Amounts are exact decimals, so "non-zero" needs no rounding tolerance and
// the balanced flag is an exact comparison.
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error) {
	balances, err := s.ComputeBalances(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.TrialBalanceReport{
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, b := range balances {
		if b.NetBalance.IsZero() {
			continue
		}

		row := domain.TrialBalanceRow{
			AccountName: b.AccountName,
			AccountType: b.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if b.NetBalance.IsPositive() {
			row.Debit = b.NetBalance
			report.TotalDebit = report.TotalDebit.Add(b.NetBalance)
		} else {
			row.Credit = b.NetBalance.Abs()
			report.TotalCredit = report.TotalCredit.Add(b.NetBalance.Abs())
		}
		report.Rows = append(report.Rows, row)
	}
	report.Balanced = report.TotalDebit.Equal(report.TotalCredit)

	s.LogInfo(ctx, "Trial balance generated",
		slog.Int("row_count", len(report.Rows)),
		slog.Bool("balanced", report.Balanced))
	return report, nil
}

// IncomeStatement summarizes revenue against expenses.
// Revenue balances sit on the credit side and are negated for display;
// expense balances are already positive on their natural debit side and are
// summed as-is. The asymmetry is deliberate.
func (s *reportingService) IncomeStatement(ctx context.Context) (*domain.IncomeStatementReport, error) {
	balances, err := s.ComputeBalances(ctx)
	if err != nil {
		return nil, err
	}

	report := s.deriveIncomeStatement(balances)

	s.LogInfo(ctx, "Income statement generated",
		slog.String("total_revenue", report.TotalRevenue.String()),
		slog.String("total_expense", report.TotalExpense.String()),
		slog.String("net_result", report.NetResult.String()))
	return report, nil
}

func (s *reportingService) deriveIncomeStatement(balances []domain.AccountBalance) *domain.IncomeStatementReport {
	report := &domain.IncomeStatementReport{
		Expenses:     []domain.AccountAmount{},
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, b := range balances {
		switch b.AccountType {
		case domain.Revenue:
			report.TotalRevenue = report.TotalRevenue.Add(b.NetBalance.Abs())
		case domain.Expense:
			report.TotalExpense = report.TotalExpense.Add(b.NetBalance)
			if !b.NetBalance.IsZero() {
				report.Expenses = append(report.Expenses, domain.AccountAmount{
					AccountID: b.AccountID,
					Name:      b.AccountName,
					Amount:    b.NetBalance,
				})
			}
		}
	}
	report.NetResult = report.TotalRevenue.Sub(report.TotalExpense)
	return report
}

// BalanceSheet states the accounting equation as of now. Liability and
// equity balances are negated to positive credit-side amounts, the net
// result is folded into the financing side, and the balanced flag checks
// TotalAssets == TotalLiabilities + TotalEquity + NetResult exactly.
func (s *reportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	balances, err := s.ComputeBalances(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, b := range balances {
		switch b.AccountType {
		case domain.Asset:
			report.TotalAssets = report.TotalAssets.Add(b.NetBalance)
			if !b.NetBalance.IsZero() {
				report.Assets = append(report.Assets, domain.AccountAmount{
					AccountID: b.AccountID,
					Name:      b.AccountName,
					Amount:    b.NetBalance,
				})
			}
		case domain.Liability:
			report.TotalLiabilities = report.TotalLiabilities.Add(b.NetBalance.Abs())
			if !b.NetBalance.IsZero() {
				report.Liabilities = append(report.Liabilities, domain.AccountAmount{
					AccountID: b.AccountID,
					Name:      b.AccountName,
					Amount:    b.NetBalance.Abs(),
				})
			}
		case domain.Equity:
			report.TotalEquity = report.TotalEquity.Add(b.NetBalance.Abs())
			if !b.NetBalance.IsZero() {
				report.Equity = append(report.Equity, domain.AccountAmount{
					AccountID: b.AccountID,
					Name:      b.AccountName,
					Amount:    b.NetBalance.Abs(),
				})
			}
		}
	}

	income := s.deriveIncomeStatement(balances)
	report.NetResult = income.NetResult
	report.TotalLiabilitiesPlusEquity = report.TotalLiabilities.Add(report.TotalEquity).Add(report.NetResult)
	report.Balanced = report.TotalAssets.Equal(report.TotalLiabilitiesPlusEquity)

	s.LogInfo(ctx, "Balance sheet generated",
		slog.String("total_assets", report.TotalAssets.String()),
		slog.String("liabilities_plus_equity", report.TotalLiabilitiesPlusEquity.String()),
		slog.Bool("balanced", report.Balanced))
	return report, nil
}
