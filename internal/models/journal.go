package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database representation of a journal row.
// DocumentRef and BankRef are nullable; an empty reference is stored as NULL.
type JournalEntry struct {
	EntryID         int64           `db:"entry_id"`
	CreatedAt       time.Time       `db:"created_at"`
	Description     string          `db:"description"`
	DebitAccountID  int64           `db:"debit_account_id"`
	CreditAccountID int64           `db:"credit_account_id"`
	Amount          decimal.Decimal `db:"amount"`
	DocumentRef     sql.NullString  `db:"document_ref"`
	BankRef         sql.NullString  `db:"bank_ref"`
}
