package mapping

import (
	"database/sql"

	"github.com/contalibre/contalibre/internal/core/domain"
	"github.com/contalibre/contalibre/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:         d.EntryID,
		CreatedAt:       d.CreatedAt,
		Description:     d.Description,
		DebitAccountID:  d.DebitAccountID,
		CreditAccountID: d.CreditAccountID,
		Amount:          d.Amount,
		DocumentRef:     toNullString(d.DocumentRef),
		BankRef:         toNullString(d.BankRef),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		CreatedAt:       m.CreatedAt,
		Description:     m.Description,
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		Amount:          m.Amount,
		DocumentRef:     m.DocumentRef.String,
		BankRef:         m.BankRef.String,
	}
}

// toNullString stores empty references as NULL.
func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
