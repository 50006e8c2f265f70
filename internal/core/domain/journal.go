package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a single double-entry movement: amount flows from
// the credit account to the debit account. The ledger is balanced by
// construction since both legs always carry the same amount.
type JournalEntry struct {
	EntryID         int64           `json:"entryID"`
	CreatedAt       time.Time       `json:"createdAt"`
	Description     string          `json:"description"`
	DebitAccountID  int64           `json:"debitAccountID"`
	CreditAccountID int64           `json:"creditAccountID"`
	Amount          decimal.Decimal `json:"amount"`
	DocumentRef     string          `json:"documentRef,omitempty"`
	BankRef         string          `json:"bankRef,omitempty"`
}

// JournalEntryDetail is a JournalEntry joined with the names of both legs,
// as shown in the journal book view.
type JournalEntryDetail struct {
	JournalEntry
	DebitAccountName  string `json:"debitAccountName"`
	CreditAccountName string `json:"creditAccountName"`
}
