package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
	"github.com/qahwatech/cafe_backoffice_app/internal/middleware"
)

// employeeFinanceHandler serves derived employee balances.
type employeeFinanceHandler struct {
	financeService portssvc.EmployeeFinanceSvcFacade
}

func newEmployeeFinanceHandler(fs portssvc.EmployeeFinanceSvcFacade) *employeeFinanceHandler {
	return &employeeFinanceHandler{financeService: fs}
}

// registerEmployeeFinanceRoutes registers the balance route.
func registerEmployeeFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.EmployeeFinanceSvcFacade) {
	h := newEmployeeFinanceHandler(financeService)

	employees := rg.Group("/employees")
	{
		employees.GET("/:employeeID/balance", h.getBalance)
	}
}

// getBalance computes the employee's balance for the requested month (?month=YYYY-MM,
// defaulting to the current month). The balance is derived fresh on every call.
func (h *employeeFinanceHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	month := time.Now().UTC()
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := time.Parse("2006-01", monthStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
			return
		}
		month = parsed
	}

	balance, err := h.financeService.ComputeBalance(c.Request.Context(), employeeID, month)
	if err != nil {
		logger.Error("Failed to compute employee balance", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeBalanceResponse(balance))
}
