package dto

import (
	"time"

	"github.com/contalibre/contalibre/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to record a journal entry.
type CreateEntryRequest struct {
	Description     string          `json:"description" binding:"required"`
	DebitAccountID  int64           `json:"debitAccountID" binding:"required"`
	CreditAccountID int64           `json:"creditAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	DocumentRef     string          `json:"documentRef"`
	BankRef         string          `json:"bankRef"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID         int64           `json:"entryID"`
	CreatedAt       time.Time       `json:"createdAt"`
	Description     string          `json:"description"`
	DebitAccountID  int64           `json:"debitAccountID"`
	CreditAccountID int64           `json:"creditAccountID"`
	Amount          decimal.Decimal `json:"amount"`
	DocumentRef     string          `json:"documentRef,omitempty"`
	BankRef         string          `json:"bankRef,omitempty"`
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:         e.EntryID,
		CreatedAt:       e.CreatedAt,
		Description:     e.Description,
		DebitAccountID:  e.DebitAccountID,
		CreditAccountID: e.CreditAccountID,
		Amount:          e.Amount,
		DocumentRef:     e.DocumentRef,
		BankRef:         e.BankRef,
	}
}

// EntryDetailResponse is an entry row of the journal book view, joined with
// the names of both legs and the display date.
type EntryDetailResponse struct {
	EntryResponse
	Date              string `json:"date"`
	DebitAccountName  string `json:"debitAccountName"`
	CreditAccountName string `json:"creditAccountName"`
}

// ListEntriesResponse wraps the journal book view.
type ListEntriesResponse struct {
	Entries []EntryDetailResponse `json:"entries"`
}

// ToListEntriesResponse converts joined domain entries to the list DTO
func ToListEntriesResponse(entries []domain.JournalEntryDetail) ListEntriesResponse {
	res := make([]EntryDetailResponse, len(entries))
	for i, e := range entries {
		res[i] = EntryDetailResponse{
			EntryResponse:     ToEntryResponse(&e.JournalEntry),
			Date:              e.CreatedAt.Format("2006-01-02"),
			DebitAccountName:  e.DebitAccountName,
			CreditAccountName: e.CreditAccountName,
		}
	}
	return ListEntriesResponse{Entries: res}
}
