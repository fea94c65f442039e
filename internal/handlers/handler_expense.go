package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
	"github.com/qahwatech/cafe_backoffice_app/internal/middleware"
)

// expenseHandler handles HTTP requests related to live expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers routes related to live expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expenseID", h.getExpenseByID)
		expenses.PUT("/:expenseID", h.updateExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create expense in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

func (h *expenseHandler) getExpenseByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		logger.Error("Failed to get expense from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve expense"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// listExpenses serves both the day view (?date=YYYY-MM-DD) and the paginated history.
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := dto.ParseDay(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		expenses, err := h.expenseService.ListExpensesByDate(c.Request.Context(), date)
		if err != nil {
			logger.Error("Failed to list expenses by date", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
			return
		}
		c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
}

func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), expenseID, req, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID, operatorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		logger.Error("Failed to delete expense in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	c.Status(http.StatusNoContent)
}
