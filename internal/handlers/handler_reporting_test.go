package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contalibre/contalibre/internal/core/domain"
	portssvc "github.com/contalibre/contalibre/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) ComputeBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockReportingService) RunningLedger(ctx context.Context, accountID int64) (*domain.AccountLedger, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLedger), args.Error(1)
}

func (m *MockReportingService) TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

func (m *MockReportingService) IncomeStatement(ctx context.Context) (*domain.IncomeStatementReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatementReport), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	mockReportingSvc *MockReportingService
	router           *gin.Engine
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockReportingSvc = new(MockReportingService)
	suite.router = gin.New()
	registerReportingRoutes(suite.router.Group("/api/v1"), suite.mockReportingSvc)
}

// --- Test Cases ---

func (suite *ReportingHandlerTestSuite) TestGetBalances_JSON() {
	balances := []domain.AccountBalance{
		{AccountID: 1, AccountName: "CAJA", AccountType: domain.Asset, NetBalance: decimal.NewFromInt(60)},
	}
	suite.mockReportingSvc.On("ComputeBalances", mock.Anything).Return(balances, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/balances", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "application/json")
	suite.Contains(w.Body.String(), "CAJA")
	suite.mockReportingSvc.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetBalances_CSVDownload() {
	balances := []domain.AccountBalance{
		{AccountID: 1, AccountName: "CAJA", AccountType: domain.Asset, NetBalance: decimal.NewFromInt(60)},
		{AccountID: 2, AccountName: "VENTAS", AccountType: domain.Revenue, NetBalance: decimal.NewFromInt(-100)},
	}
	suite.mockReportingSvc.On("ComputeBalances", mock.Anything).Return(balances, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/balances?format=csv", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="balances.csv"`, w.Header().Get("Content-Disposition"))
	// All rows must reach the client, including the last flushed batch
	suite.Equal("account_id,name,type,net_balance\n1,CAJA,ASSET,60\n2,VENTAS,REVENUE,-100\n", w.Body.String())
	suite.mockReportingSvc.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetTrialBalance_CSVDownload() {
	report := &domain.TrialBalanceReport{
		Rows: []domain.TrialBalanceRow{
			{AccountName: "CAJA", AccountType: domain.Asset, Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
			{AccountName: "VENTAS", AccountType: domain.Revenue, Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
		},
		TotalDebit:  decimal.NewFromInt(100),
		TotalCredit: decimal.NewFromInt(100),
		Balanced:    true,
	}
	suite.mockReportingSvc.On("TrialBalance", mock.Anything).Return(report, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/trial-balance?format=csv", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(`attachment; filename="trial_balance.csv"`, w.Header().Get("Content-Disposition"))
	suite.Equal("account,type,debit,credit\nCAJA,ASSET,100,0\nVENTAS,REVENUE,0,100\nTOTAL,,100,100\n", w.Body.String())
	suite.mockReportingSvc.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetBalances_ServiceError() {
	suite.mockReportingSvc.On("ComputeBalances", mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/balances", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

// --- Run Test Suite ---
func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
