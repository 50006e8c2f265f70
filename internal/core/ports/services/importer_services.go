package services

import (
	"context"
	"io"

	"github.com/contalibre/contalibre/internal/core/domain"
)

// ImportSvc defines the bulk entry importer boundary.
type ImportSvc interface {
	// ImportEntries reads CSV rows with the columns DESCRIPTION,
	// CUENTA_DEBITO, CUENTA_CREDITO, MONTO and optional REF_DOC / REF_BANCO,
	// records a journal entry per valid row and reports per-row failures
	// without aborting the batch.
	ImportEntries(ctx context.Context, r io.Reader) (*domain.ImportResult, error)
}
