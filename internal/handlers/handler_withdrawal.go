package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
	"github.com/qahwatech/cafe_backoffice_app/internal/middleware"
)

// withdrawalHandler handles HTTP requests for employee withdrawals.
type withdrawalHandler struct {
	withdrawalService portssvc.WithdrawalSvcFacade
}

func newWithdrawalHandler(ws portssvc.WithdrawalSvcFacade) *withdrawalHandler {
	return &withdrawalHandler{withdrawalService: ws}
}

// registerWithdrawalRoutes registers routes related to withdrawals.
func registerWithdrawalRoutes(rg *gin.RouterGroup, withdrawalService portssvc.WithdrawalSvcFacade) {
	h := newWithdrawalHandler(withdrawalService)

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.POST("", h.createWithdrawal)
		withdrawals.GET("", h.listWithdrawals)
		withdrawals.PUT("/:withdrawalID", h.updateWithdrawal)
		withdrawals.DELETE("/:withdrawalID", h.deleteWithdrawal)
	}
}

func (h *withdrawalHandler) createWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWithdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	withdrawal, err := h.withdrawalService.CreateWithdrawal(c.Request.Context(), req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create withdrawal in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create withdrawal"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToWithdrawalResponse(withdrawal))
}

// listWithdrawals lists one employee's withdrawals for a month
// (?employeeID=...&month=YYYY-MM, month defaults to the current month).
func (h *withdrawalHandler) listWithdrawals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID := c.Query("employeeID")
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeID query parameter is required"})
		return
	}

	month := time.Now().UTC()
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := time.Parse("2006-01", monthStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
			return
		}
		month = parsed
	}

	withdrawals, err := h.withdrawalService.ListWithdrawalsForMonth(c.Request.Context(), employeeID, month)
	if err != nil {
		logger.Error("Failed to list withdrawals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list withdrawals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWithdrawalResponses(withdrawals))
}

func (h *withdrawalHandler) updateWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	withdrawalID := c.Param("withdrawalID")

	var req dto.UpdateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWithdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	withdrawal, err := h.withdrawalService.UpdateWithdrawal(c.Request.Context(), withdrawalID, req, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Withdrawal not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update withdrawal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update withdrawal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWithdrawalResponse(withdrawal))
}

func (h *withdrawalHandler) deleteWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	withdrawalID := c.Param("withdrawalID")

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.withdrawalService.DeleteWithdrawal(c.Request.Context(), withdrawalID, operatorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Withdrawal not found"})
			return
		}
		logger.Error("Failed to delete withdrawal in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete withdrawal"})
		return
	}

	c.Status(http.StatusNoContent)
}
