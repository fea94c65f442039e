package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
	"github.com/qahwatech/cafe_backoffice_app/internal/middleware"
)

// reportingHandler serves closure-spanning expense reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/expenses", h.getExpenseReport)
		reports.GET("/archived-expenses", h.listArchivedExpenses)
	}
}

// getExpenseReport builds the per-day, per-category expense report for
// [?from=YYYY-MM-DD, ?to=YYYY-MM-DD].
func (h *reportingHandler) getExpenseReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := dto.ParseDay(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := dto.ParseDay(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.BuildExpenseReport(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to build expense report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build expense report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// listArchivedExpenses lists raw archived rows with expense_date in
// [?from=YYYY-MM-DD, ?to=YYYY-MM-DD], across closures.
func (h *reportingHandler) listArchivedExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := dto.ParseDay(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := dto.ParseDay(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}

	archived, err := h.reportingService.ListArchivedExpensesInRange(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list archived expenses in range", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list archived expenses"})
		return
	}

	c.JSON(http.StatusOK, archived)
}
