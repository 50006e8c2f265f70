package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is the derived net position of one account.
// NetBalance = total debits - total credits; positive means a debit-side
// balance, negative a credit-side balance. Accounts with no entries have a
// zero balance.
type AccountBalance struct {
	AccountID   int64           `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	NetBalance  decimal.Decimal `json:"netBalance"`
}

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account with a non-zero net balance split
// into debit/credit columns. Balanced is the fundamental self-check of
// double-entry bookkeeping: total debits must equal total credits.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Balanced    bool              `json:"balanced"`
}

// AccountAmount pairs an account with a display amount for report breakdowns.
type AccountAmount struct {
	AccountID int64           `json:"accountID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatementReport summarizes revenue against expenses.
// NetResult > 0 is profit, < 0 is loss.
type IncomeStatementReport struct {
	Expenses     []AccountAmount `json:"expenses"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetResult    decimal.Decimal `json:"netResult"`
}

// BalanceSheetReport states the accounting equation:
// TotalAssets = TotalLiabilities + TotalEquity + NetResult.
// Liability and equity amounts are shown as positive credit-side values.
type BalanceSheetReport struct {
	Assets                     []AccountAmount `json:"assets"`
	Liabilities                []AccountAmount `json:"liabilities"`
	Equity                     []AccountAmount `json:"equity"`
	TotalAssets                decimal.Decimal `json:"totalAssets"`
	TotalLiabilities           decimal.Decimal `json:"totalLiabilities"`
	TotalEquity                decimal.Decimal `json:"totalEquity"`
	NetResult                  decimal.Decimal `json:"netResult"`
	TotalLiabilitiesPlusEquity decimal.Decimal `json:"totalLiabilitiesPlusEquity"`
	Balanced                   bool            `json:"balanced"`
}

// LedgerLine is one row of an account's running ledger.
type LedgerLine struct {
	EntryID     int64           `json:"entryID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountLedger is the chronological movement history of a single account
// with a running balance accumulated on the account's natural side.
type AccountLedger struct {
	AccountID   int64           `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Lines       []LedgerLine    `json:"lines"`
	Balance     decimal.Decimal `json:"balance"`
}
