package dto

import (
	"time"

	"github.com/contalibre/contalibre/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse is one account's derived net balance.
type BalanceResponse struct {
	AccountID   int64              `json:"accountID"`
	AccountName string             `json:"accountName"`
	AccountType domain.AccountType `json:"accountType"`
	NetBalance  decimal.Decimal    `json:"netBalance"`
}

// BalancesResponse wraps the per-account balances view.
type BalancesResponse struct {
	Balances []BalanceResponse `json:"balances"`
}

// ToBalancesResponse converts domain balances to the list DTO
func ToBalancesResponse(balances []domain.AccountBalance) BalancesResponse {
	res := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = BalanceResponse{
			AccountID:   b.AccountID,
			AccountName: b.AccountName,
			AccountType: b.AccountType,
			NetBalance:  b.NetBalance,
		}
	}
	return BalancesResponse{Balances: res}
}

// TrialBalanceRowResponse is one row of the trial balance report.
type TrialBalanceRowResponse struct {
	AccountName string             `json:"accountName"`
	AccountType domain.AccountType `json:"accountType"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
}

// TrialBalanceResponse is the full trial balance report.
type TrialBalanceResponse struct {
	GeneratedAt time.Time                 `json:"generatedAt"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	Totals      struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	Balanced bool `json:"balanced"`
}

// ToTrialBalanceResponse converts a domain report to the response DTO
func ToTrialBalanceResponse(report *domain.TrialBalanceReport, generatedAt time.Time) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(report.Rows))
	for i, r := range report.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountName: r.AccountName,
			AccountType: r.AccountType,
			Debit:       r.Debit,
			Credit:      r.Credit,
		}
	}
	resp := TrialBalanceResponse{
		GeneratedAt: generatedAt,
		Rows:        rows,
		Balanced:    report.Balanced,
	}
	resp.Totals.Debit = report.TotalDebit
	resp.Totals.Credit = report.TotalCredit
	return resp
}

// AccountAmountResponse pairs an account name with a report amount.
type AccountAmountResponse struct {
	AccountID int64           `json:"accountID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

func toAccountAmountResponses(amounts []domain.AccountAmount) []AccountAmountResponse {
	res := make([]AccountAmountResponse, len(amounts))
	for i, a := range amounts {
		res[i] = AccountAmountResponse{AccountID: a.AccountID, Name: a.Name, Amount: a.Amount}
	}
	return res
}

// IncomeStatementResponse is the income statement report.
type IncomeStatementResponse struct {
	GeneratedAt time.Time               `json:"generatedAt"`
	Expenses    []AccountAmountResponse `json:"expenses"`
	Summary     struct {
		TotalRevenue decimal.Decimal `json:"totalRevenue"`
		TotalExpense decimal.Decimal `json:"totalExpense"`
		NetResult    decimal.Decimal `json:"netResult"`
	} `json:"summary"`
}

// ToIncomeStatementResponse converts a domain report to the response DTO
func ToIncomeStatementResponse(report *domain.IncomeStatementReport, generatedAt time.Time) IncomeStatementResponse {
	resp := IncomeStatementResponse{
		GeneratedAt: generatedAt,
		Expenses:    toAccountAmountResponses(report.Expenses),
	}
	resp.Summary.TotalRevenue = report.TotalRevenue
	resp.Summary.TotalExpense = report.TotalExpense
	resp.Summary.NetResult = report.NetResult
	return resp
}

// BalanceSheetResponse is the balance sheet report.
type BalanceSheetResponse struct {
	GeneratedAt time.Time               `json:"generatedAt"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets                decimal.Decimal `json:"totalAssets"`
		TotalLiabilities           decimal.Decimal `json:"totalLiabilities"`
		TotalEquity                decimal.Decimal `json:"totalEquity"`
		NetResult                  decimal.Decimal `json:"netResult"`
		TotalLiabilitiesPlusEquity decimal.Decimal `json:"totalLiabilitiesPlusEquity"`
	} `json:"summary"`
	Balanced bool `json:"balanced"`
}

// ToBalanceSheetResponse converts a domain report to the response DTO
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, generatedAt time.Time) BalanceSheetResponse {
	resp := BalanceSheetResponse{
		GeneratedAt: generatedAt,
		Assets:      toAccountAmountResponses(report.Assets),
		Liabilities: toAccountAmountResponses(report.Liabilities),
		Equity:      toAccountAmountResponses(report.Equity),
		Balanced:    report.Balanced,
	}
	resp.Summary.TotalAssets = report.TotalAssets
	resp.Summary.TotalLiabilities = report.TotalLiabilities
	resp.Summary.TotalEquity = report.TotalEquity
	resp.Summary.NetResult = report.NetResult
	resp.Summary.TotalLiabilitiesPlusEquity = report.TotalLiabilitiesPlusEquity
	return resp
}

// LedgerLineResponse is one row of an account's running ledger.
type LedgerLineResponse struct {
	EntryID     int64           `json:"entryID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerResponse is an account's running ledger with the closing balance.
type LedgerResponse struct {
	AccountID   int64                `json:"accountID"`
	AccountName string               `json:"accountName"`
	AccountType domain.AccountType   `json:"accountType"`
	Lines       []LedgerLineResponse `json:"lines"`
	Balance     decimal.Decimal      `json:"balance"`
}

// ToLedgerResponse converts a domain ledger to the response DTO
func ToLedgerResponse(ledger *domain.AccountLedger) LedgerResponse {
	lines := make([]LedgerLineResponse, len(ledger.Lines))
	for i, l := range ledger.Lines {
		lines[i] = LedgerLineResponse{
			EntryID:     l.EntryID,
			Date:        l.Date.Format("2006-01-02"),
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Balance:     l.Balance,
		}
	}
	return LedgerResponse{
		AccountID:   ledger.AccountID,
		AccountName: ledger.AccountName,
		AccountType: ledger.AccountType,
		Lines:       lines,
		Balance:     ledger.Balance,
	}
}
