package dto

import "github.com/contalibre/contalibre/internal/core/domain"

// ImportResultResponse reports the outcome of a bulk entry import.
type ImportResultResponse struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

// ToImportResultResponse converts a domain import result to the response DTO
func ToImportResultResponse(result *domain.ImportResult) ImportResultResponse {
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	return ImportResultResponse{
		Imported: result.Imported,
		Failed:   result.Failed,
		Errors:   errs,
	}
}
