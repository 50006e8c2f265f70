package models

import "time"

// Account is the database representation of a chart-of-accounts row.
type Account struct {
	AccountID   int64     `db:"account_id"`
	Name        string    `db:"name"`
	AccountType string    `db:"account_type"`
	CreatedAt   time.Time `db:"created_at"`
}
