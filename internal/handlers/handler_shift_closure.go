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

// shiftClosureHandler handles HTTP requests for the shift reconciliation workflow.
type shiftClosureHandler struct {
	closureService portssvc.ShiftClosureSvcFacade
}

func newShiftClosureHandler(cs portssvc.ShiftClosureSvcFacade) *shiftClosureHandler {
	return &shiftClosureHandler{closureService: cs}
}

// registerShiftClosureRoutes registers routes related to shift closures.
func registerShiftClosureRoutes(rg *gin.RouterGroup, closureService portssvc.ShiftClosureSvcFacade) {
	h := newShiftClosureHandler(closureService)

	closures := rg.Group("/shift-closures")
	{
		closures.POST("", h.closeShift)
		closures.GET("", h.listClosures)
		closures.GET("/:closureID", h.getClosureByID)
		closures.GET("/:closureID/archived-expenses", h.listArchivedExpenses)
	}
}

func (h *shiftClosureHandler) closeShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	closure, err := h.closureService.CloseShift(c.Request.Context(), req, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "This shift is already closed for the given date"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrPurgeFailed):
			// The closure row stands but live expenses were not removed; surface the
			// retry instruction rather than a generic failure.
			logger.Error("Shift closure purge failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to close shift in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close shift"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftClosureResponse(closure))
}

func (h *shiftClosureHandler) getClosureByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closureID := c.Param("closureID")

	closure, err := h.closureService.GetClosureByID(c.Request.Context(), closureID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Closure not found"})
			return
		}
		logger.Error("Failed to get closure from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve closure"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftClosureResponse(closure))
}

func (h *shiftClosureHandler) listClosures(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	closures, err := h.closureService.ListClosures(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list closures", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list closures"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftClosureResponses(closures))
}

func (h *shiftClosureHandler) listArchivedExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closureID := c.Param("closureID")

	archived, err := h.closureService.ListArchivedExpenses(c.Request.Context(), closureID)
	if err != nil {
		logger.Error("Failed to list archived expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list archived expenses"})
		return
	}

	c.JSON(http.StatusOK, archived)
}
