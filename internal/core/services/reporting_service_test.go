package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/contalibre/contalibre/internal/apperrors"
	"github.com/contalibre/contalibre/internal/core/domain"
	portssvc "github.com/contalibre/contalibre/internal/core/ports/services"
	"github.com/contalibre/contalibre/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockAccountRepo   *MockAccountRepository
	mockJournalRepo   *MockJournalRepository
	service           portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockAccountRepo, suite.mockJournalRepo)
}

// balancesAfterSaleAndRent models a 100 cash sale followed by a 40 rent
// payment: CAJA nets +60, VENTAS nets -100, ALQUILER nets +40.
func (suite *ReportingServiceTestSuite) balancesAfterSaleAndRent() []domain.AccountBalance {
	return []domain.AccountBalance{
		{AccountID: 1, AccountName: "CAJA", AccountType: domain.Asset, NetBalance: decimal.NewFromInt(60)},
		{AccountID: 2, AccountName: "VENTAS", AccountType: domain.Revenue, NetBalance: decimal.NewFromInt(-100)},
		{AccountID: 3, AccountName: "ALQUILER", AccountType: domain.Expense, NetBalance: decimal.NewFromInt(40)},
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestRunningLedger_DebitNaturalAccount() {
	ctx := context.Background()
	cash := domain.Account{AccountID: 1, Name: "CAJA", AccountType: domain.Asset}
	movements := []domain.JournalEntry{
		{EntryID: 1, CreatedAt: time.Now().Add(-2 * time.Hour), Description: "Venta", DebitAccountID: 1, CreditAccountID: 2, Amount: decimal.NewFromInt(100)},
		{EntryID: 2, CreatedAt: time.Now().Add(-1 * time.Hour), Description: "Pago alquiler", DebitAccountID: 3, CreditAccountID: 1, Amount: decimal.NewFromInt(40)},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(1)).Return(&cash, nil).Once()
	suite.mockJournalRepo.On("ListMovementsForAccount", ctx, int64(1)).Return(movements, nil).Once()

	ledger, err := suite.service.RunningLedger(ctx, 1)

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Lines, 2)
	suite.True(ledger.Lines[0].Debit.Equal(decimal.NewFromInt(100)))
	suite.True(ledger.Lines[0].Balance.Equal(decimal.NewFromInt(100)))
	suite.True(ledger.Lines[1].Credit.Equal(decimal.NewFromInt(40)))
	suite.True(ledger.Lines[1].Balance.Equal(decimal.NewFromInt(60)))
	suite.True(ledger.Balance.Equal(decimal.NewFromInt(60)))
}

func (suite *ReportingServiceTestSuite) TestRunningLedger_CreditNaturalAccount() {
	ctx := context.Background()
	sales := domain.Account{AccountID: 2, Name: "VENTAS", AccountType: domain.Revenue}
	movements := []domain.JournalEntry{
		{EntryID: 1, CreatedAt: time.Now(), Description: "Venta", DebitAccountID: 1, CreditAccountID: 2, Amount: decimal.NewFromInt(100)},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(2)).Return(&sales, nil).Once()
	suite.mockJournalRepo.On("ListMovementsForAccount", ctx, int64(2)).Return(movements, nil).Once()

	ledger, err := suite.service.RunningLedger(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Lines, 1)
	// Credit-natural accounts grow on the credit side
	suite.True(ledger.Lines[0].Balance.Equal(decimal.NewFromInt(100)))
	suite.True(ledger.Balance.Equal(decimal.NewFromInt(100)))
}

func (suite *ReportingServiceTestSuite) TestRunningLedger_AccountNotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RunningLedger(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_Balanced() {
	ctx := context.Background()

	suite.mockReportingRepo.On("GetAccountBalances", ctx).Return(suite.balancesAfterSaleAndRent(), nil).Once()

	report, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 3)
	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(100)))
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(100)))
	suite.True(report.Balanced)

	// VENTAS lands on the credit column as a positive amount
	suite.Equal("VENTAS", report.Rows[1].AccountName)
	suite.True(report.Rows[1].Credit.Equal(decimal.NewFromInt(100)))
	suite.True(report.Rows[1].Debit.IsZero())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_SkipsZeroBalances() {
	ctx := context.Background()
	balances := []domain.AccountBalance{
		{AccountID: 1, AccountName: "CAJA", AccountType: domain.Asset, NetBalance: decimal.Zero},
		{AccountID: 2, AccountName: "BANCO", AccountType: domain.Asset, NetBalance: decimal.NewFromInt(10)},
		{AccountID: 3, AccountName: "CAPITAL", AccountType: domain.Equity, NetBalance: decimal.NewFromInt(-10)},
	}

	suite.mockReportingRepo.On("GetAccountBalances", ctx).Return(balances, nil).Once()

	report, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.Len(report.Rows, 2)
	suite.True(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_SaleAndRent() {
	ctx := context.Background()

	suite.mockReportingRepo.On("GetAccountBalances", ctx).Return(suite.balancesAfterSaleAndRent(), nil).Once()

	report, err := suite.service.IncomeStatement(ctx)

	suite.Require().NoError(err)
	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(100)))
	suite.True(report.TotalExpense.Equal(decimal.NewFromInt(40)))
	suite.True(report.NetResult.Equal(decimal.NewFromInt(60)))
	suite.Require().Len(report.Expenses, 1)
	suite.Equal("ALQUILER", report.Expenses[0].Name)
	suite.True(report.Expenses[0].Amount.Equal(decimal.NewFromInt(40)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_EquationHolds() {
	ctx := context.Background()

	suite.mockReportingRepo.On("GetAccountBalances", ctx).Return(suite.balancesAfterSaleAndRent(), nil).Once()

	report, err := suite.service.BalanceSheet(ctx)

	suite.Require().NoError(err)
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(60)))
	suite.True(report.TotalLiabilities.IsZero())
	suite.True(report.TotalEquity.IsZero())
	suite.True(report.NetResult.Equal(decimal.NewFromInt(60)))
	suite.True(report.TotalLiabilitiesPlusEquity.Equal(decimal.NewFromInt(60)))
	suite.True(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_LiabilityAndEquitySides() {
	ctx := context.Background()
	balances := []domain.AccountBalance{
		{AccountID: 1, AccountName: "BANCO", AccountType: domain.Asset, NetBalance: decimal.NewFromInt(500)},
		{AccountID: 2, AccountName: "PRESTAMO", AccountType: domain.Liability, NetBalance: decimal.NewFromInt(-200)},
		{AccountID: 3, AccountName: "CAPITAL", AccountType: domain.Equity, NetBalance: decimal.NewFromInt(-300)},
	}

	suite.mockReportingRepo.On("GetAccountBalances", ctx).Return(balances, nil).Once()

	report, err := suite.service.BalanceSheet(ctx)

	suite.Require().NoError(err)
	// Credit-side balances are shown as positive amounts
	suite.Require().Len(report.Liabilities, 1)
	suite.True(report.Liabilities[0].Amount.Equal(decimal.NewFromInt(200)))
	suite.True(report.TotalLiabilities.Equal(decimal.NewFromInt(200)))
	suite.True(report.TotalEquity.Equal(decimal.NewFromInt(300)))
	suite.True(report.NetResult.IsZero())
	suite.True(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestComputeBalances_Recomputable() {
	ctx := context.Background()
	balances := suite.balancesAfterSaleAndRent()

	suite.mockReportingRepo.On("GetAccountBalances", ctx).Return(balances, nil).Twice()

	first, err := suite.service.ComputeBalances(ctx)
	suite.Require().NoError(err)
	second, err := suite.service.ComputeBalances(ctx)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
