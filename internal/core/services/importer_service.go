package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/contalibre/contalibre/internal/apperrors"
	"github.com/contalibre/contalibre/internal/core/domain"
	portssvc "github.com/contalibre/contalibre/internal/core/ports/services"
	"github.com/contalibre/contalibre/internal/dto"
	"github.com/shopspring/decimal"
)

// Column names of the external bulk-import contract.
const (
	importColDescription = "DESCRIPTION"
	importColDebit       = "CUENTA_DEBITO"
	importColCredit      = "CUENTA_CREDITO"
	importColAmount      = "MONTO"
	importColDocRef      = "REF_DOC"
	importColBankRef     = "REF_BANCO"
)

// maxImportErrorDetails caps the per-row error list; overflow is summarized.
const maxImportErrorDetails = 10

// importerService implements the ImportSvc interface. It is a thin boundary
// component: each row goes through the same resolution and validation path
// as a directly recorded entry, and the batch continues past row failures.
type importerService struct {
	BaseService
	accountSvc portssvc.AccountSvc
	journalSvc portssvc.JournalSvc
}

// NewImporterService creates a new bulk entry importer
func NewImporterService(accountSvc portssvc.AccountSvc, journalSvc portssvc.JournalSvc) portssvc.ImportSvc {
	return &importerService{
		accountSvc: accountSvc,
		journalSvc: journalSvc,
	}
}

// Ensure importerService implements the ImportSvc interface
var _ portssvc.ImportSvc = (*importerService)(nil)

// ImportEntries parses CSV rows and records one journal entry per valid row.
func (s *importerService) ImportEntries(ctx context.Context, r io.Reader) (*domain.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header row: %v", apperrors.ErrValidation, err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[normalizeImportHeader(h)] = i
	}
	for _, required := range []string{importColDescription, importColDebit, importColCredit, importColAmount} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing required column %s", apperrors.ErrValidation, required)
		}
	}

	result := &domain.ImportResult{Errors: []string{}}
	overflow := 0
	rowNumber := 1 // header is row 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNumber++
		if err != nil {
			result.Failed++
			overflow = s.appendRowError(result, overflow, rowNumber, "malformed CSV row")
			continue
		}

		row := domain.ImportRow{
			RowNumber:         rowNumber,
			Description:       fieldAt(record, columns, importColDescription),
			DebitAccountName:  fieldAt(record, columns, importColDebit),
			CreditAccountName: fieldAt(record, columns, importColCredit),
			Amount:            fieldAt(record, columns, importColAmount),
			DocumentRef:       fieldAt(record, columns, importColDocRef),
			BankRef:           fieldAt(record, columns, importColBankRef),
		}

		rowMsg, err := s.importRow(ctx, row)
		if err != nil {
			s.LogError(ctx, err, "Bulk import aborted", slog.Int("row", rowNumber))
			return nil, fmt.Errorf("import aborted at row %d: %w", rowNumber, err)
		}
		if rowMsg != "" {
			result.Failed++
			overflow = s.appendRowError(result, overflow, rowNumber, rowMsg)
			continue
		}
		result.Imported++
	}

	if overflow > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("and %d more rows failed", overflow))
	}

	s.LogInfo(ctx, "Bulk import finished",
		slog.Int("imported", result.Imported),
		slog.Int("failed", result.Failed))
	return result, nil
}

// importRow resolves the account names and records the entry through the
// journal, so every row obeys the same validation rules as direct entry.
// A non-empty rowMsg reports a rejected row; a non-nil error is an
// infrastructure failure that aborts the whole batch.
func (s *importerService) importRow(ctx context.Context, row domain.ImportRow) (rowMsg string, err error) {
	debitID, err := s.accountSvc.ResolveIDByName(ctx, row.DebitAccountName)
	if err != nil {
		if isRowError(err) {
			return fmt.Sprintf("debit account %q not found", row.DebitAccountName), nil
		}
		return "", err
	}

	creditID, err := s.accountSvc.ResolveIDByName(ctx, row.CreditAccountName)
	if err != nil {
		if isRowError(err) {
			return fmt.Sprintf("credit account %q not found", row.CreditAccountName), nil
		}
		return "", err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return fmt.Sprintf("amount %q is not a number", row.Amount), nil
	}
	if !amount.IsPositive() {
		return fmt.Sprintf("amount %s must be greater than zero", amount), nil
	}

	_, err = s.journalSvc.RecordEntry(ctx, dto.CreateEntryRequest{
		Description:     row.Description,
		DebitAccountID:  debitID,
		CreditAccountID: creditID,
		Amount:          amount,
		DocumentRef:     row.DocumentRef,
		BankRef:         row.BankRef,
	})
	if err != nil {
		if isRowError(err) {
			return err.Error(), nil
		}
		return "", err
	}
	return "", nil
}

// isRowError reports whether the failure is scoped to the row's own data.
// Anything else (a connection loss, a query failure) concerns the batch.
func isRowError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound)
}

func (s *importerService) appendRowError(result *domain.ImportResult, overflow, rowNumber int, msg string) int {
	if len(result.Errors) >= maxImportErrorDetails {
		return overflow + 1
	}
	result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", rowNumber, msg))
	return overflow
}

// normalizeImportHeader canonicalizes a column header: trimmed, uppercased,
// internal spaces collapsed to underscores.
func normalizeImportHeader(h string) string {
	normalized := strings.ToUpper(strings.TrimSpace(h))
	return strings.ReplaceAll(normalized, " ", "_")
}

func fieldAt(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
