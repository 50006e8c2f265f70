package domain

import (
	"strings"
	"time"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists every valid account type.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValid reports whether the account type is one of the closed set.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsCreditNatural reports whether the account type grows on the credit side.
// LIABILITY, EQUITY and REVENUE accounts carry a natural credit balance;
// ASSET and EXPENSE accounts carry a natural debit balance.
func (t AccountType) IsCreditNatural() bool {
	switch t {
	case Liability, Equity, Revenue:
		return true
	}
	return false
}

// NormalizeAccountName returns the canonical form of an account name:
// surrounding whitespace trimmed, uppercased. Name uniqueness and lookups
// operate on this form.
func NormalizeAccountName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Account represents an account in the chart of accounts.
// Name and type are fixed once created.
type Account struct {
	AccountID   int64       `json:"accountID"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	CreatedAt   time.Time   `json:"createdAt"`
}
