package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/contalibre/contalibre/internal/core/ports/services"
	"github.com/contalibre/contalibre/internal/dto"
	"github.com/contalibre/contalibre/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balances", h.getBalances)
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}
}

// wantsCSV reports whether the request asked for a CSV download.
func wantsCSV(c *gin.Context) bool {
	return c.Query("format") == "csv"
}

// writeCSV streams rows as an attachment with the given filename.
func writeCSV(c *gin.Context, filename string, rows [][]string) error {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	// WriteAll flushes and reports the writer's error itself
	return csv.NewWriter(c.Writer).WriteAll(rows)
}

// getBalances godoc
// @Summary Net balances per account
// @Description Computes each account's net balance as total debits minus total credits
// @Tags reports
// @Produce  json
// @Param   format query string false "Set to csv to download the report" Enums(csv)
// @Success 200 {object} dto.BalancesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Security BearerAuth
// @Router /reports/balances [get]
func (h *reportingHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.reportingService.ComputeBalances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balances"})
		return
	}

	if wantsCSV(c) {
		rows := [][]string{{"account_id", "name", "type", "net_balance"}}
		for _, b := range balances {
			rows = append(rows, []string{
				fmt.Sprintf("%d", b.AccountID),
				b.AccountName,
				string(b.AccountType),
				b.NetBalance.String(),
			})
		}
		if err := writeCSV(c, "balances.csv", rows); err != nil {
			logger.Error("Failed to write balances CSV", slog.String("error", err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBalancesResponse(balances))
}

// getTrialBalance godoc
// @Summary Trial balance report
// @Description Splits each nonzero net balance into its debit or credit column and checks the totals match
// @Tags reports
// @Produce  json
// @Param   format query string false "Set to csv to download the report" Enums(csv)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate trial balance"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trial balance"})
		return
	}

	if !report.Balanced {
		logger.Warn("Trial balance does not balance",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}

	if wantsCSV(c) {
		rows := [][]string{{"account", "type", "debit", "credit"}}
		for _, r := range report.Rows {
			rows = append(rows, []string{r.AccountName, string(r.AccountType), r.Debit.String(), r.Credit.String()})
		}
		rows = append(rows, []string{"TOTAL", "", report.TotalDebit.String(), report.TotalCredit.String()})
		if err := writeCSV(c, "trial_balance.csv", rows); err != nil {
			logger.Error("Failed to write trial balance CSV", slog.String("error", err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report, time.Now()))
}

// getIncomeStatement godoc
// @Summary Income statement report
// @Description Summarizes revenue against expenses with an expense breakdown
// @Tags reports
// @Produce  json
// @Param   format query string false "Set to csv to download the report" Enums(csv)
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate income statement"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.IncomeStatement(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate income statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate income statement"})
		return
	}

	if wantsCSV(c) {
		rows := [][]string{{"concept", "amount"}}
		rows = append(rows, []string{"TOTAL REVENUE", report.TotalRevenue.String()})
		for _, e := range report.Expenses {
			rows = append(rows, []string{e.Name, e.Amount.String()})
		}
		rows = append(rows, []string{"TOTAL EXPENSE", report.TotalExpense.String()})
		rows = append(rows, []string{"NET RESULT", report.NetResult.String()})
		if err := writeCSV(c, "income_statement.csv", rows); err != nil {
			logger.Error("Failed to write income statement CSV", slog.String("error", err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report, time.Now()))
}

// getBalanceSheet godoc
// @Summary Balance sheet report
// @Description Lists assets against liabilities plus equity adjusted by the net result
// @Tags reports
// @Produce  json
// @Param   format query string false "Set to csv to download the report" Enums(csv)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate balance sheet"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate balance sheet"})
		return
	}

	if !report.Balanced {
		logger.Warn("Balance sheet does not balance",
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("liabilities_plus_equity", report.TotalLiabilitiesPlusEquity.String()))
	}

	if wantsCSV(c) {
		rows := [][]string{{"section", "account", "amount"}}
		for _, a := range report.Assets {
			rows = append(rows, []string{"ASSET", a.Name, a.Amount.String()})
		}
		for _, l := range report.Liabilities {
			rows = append(rows, []string{"LIABILITY", l.Name, l.Amount.String()})
		}
		for _, e := range report.Equity {
			rows = append(rows, []string{"EQUITY", e.Name, e.Amount.String()})
		}
		rows = append(rows, []string{"TOTAL", "ASSETS", report.TotalAssets.String()})
		rows = append(rows, []string{"TOTAL", "LIABILITIES + EQUITY + RESULT", report.TotalLiabilitiesPlusEquity.String()})
		if err := writeCSV(c, "balance_sheet.csv", rows); err != nil {
			logger.Error("Failed to write balance sheet CSV", slog.String("error", err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report, time.Now()))
}
