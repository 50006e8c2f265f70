package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/contalibre/contalibre/internal/apperrors"
	portssvc "github.com/contalibre/contalibre/internal/core/ports/services"
	"github.com/contalibre/contalibre/internal/dto"
	"github.com/contalibre/contalibre/internal/middleware"
	"github.com/gin-gonic/gin"
)

// importHandler handles bulk CSV imports of journal entries.
type importHandler struct {
	importService portssvc.ImportSvc
}

// newImportHandler creates a new importHandler.
func newImportHandler(is portssvc.ImportSvc) *importHandler {
	return &importHandler{
		importService: is,
	}
}

// registerImportRoutes registers routes related to bulk imports.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvc) {
	h := newImportHandler(importService)

	imports := rg.Group("/imports")
	{
		imports.POST("/entries", h.importEntries)
	}
}

// importEntries godoc
// @Summary Bulk import journal entries from CSV
// @Description Uploads a CSV file of entries and imports every valid row, reporting per-row failures
// @Tags imports
// @Accept  mpfd
// @Produce  json
// @Param   file formData file true "CSV file with DESCRIPTION, CUENTA_DEBITO, CUENTA_CREDITO and MONTO columns"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} map[string]string "Missing file or unusable CSV"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to import entries"
// @Security BearerAuth
// @Router /imports/entries [post]
func (h *importHandler) importEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Missing file in import request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A CSV file is required under the 'file' form field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	logger.Info("Received bulk import request",
		slog.String("filename", fileHeader.Filename),
		slog.Int64("size_bytes", fileHeader.Size))

	result, err := h.importService.ImportEntries(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Unusable import file", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to import entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import entries"})
		}
		return
	}

	logger.Info("Bulk import completed",
		slog.Int("imported", result.Imported),
		slog.Int("failed", result.Failed))
	c.JSON(http.StatusOK, dto.ToImportResultResponse(result))
}
