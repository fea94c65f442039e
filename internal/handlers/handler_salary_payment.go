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

// salaryPaymentHandler handles HTTP requests for salary disbursements.
type salaryPaymentHandler struct {
	salaryService portssvc.SalaryPaymentSvcFacade
}

func newSalaryPaymentHandler(ss portssvc.SalaryPaymentSvcFacade) *salaryPaymentHandler {
	return &salaryPaymentHandler{salaryService: ss}
}

// registerSalaryPaymentRoutes registers routes related to salary payments.
func registerSalaryPaymentRoutes(rg *gin.RouterGroup, salaryService portssvc.SalaryPaymentSvcFacade) {
	h := newSalaryPaymentHandler(salaryService)

	payments := rg.Group("/salary-payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
	}
}

func (h *salaryPaymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSalaryPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSalaryPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.salaryService.CreatePayment(c.Request.Context(), req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create salary payment in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create salary payment"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSalaryPaymentResponse(payment))
}

// listPayments lists one employee's salary payments for a month
// (?employeeID=...&month=YYYY-MM, month defaults to the current month).
func (h *salaryPaymentHandler) listPayments(c *gin.Context) {
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

	payments, err := h.salaryService.ListPaymentsForMonth(c.Request.Context(), employeeID, month)
	if err != nil {
		logger.Error("Failed to list salary payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list salary payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSalaryPaymentResponses(payments))
}
