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

// operatorHandler manages operator accounts behind the auth middleware.
type operatorHandler struct {
	operatorService portssvc.OperatorSvcFacade
}

func newOperatorHandler(os portssvc.OperatorSvcFacade) *operatorHandler {
	return &operatorHandler{operatorService: os}
}

// registerOperatorRoutes registers the operator management routes.
func registerOperatorRoutes(rg *gin.RouterGroup, operatorService portssvc.OperatorSvcFacade) {
	h := newOperatorHandler(operatorService)

	operators := rg.Group("/operators")
	{
		operators.POST("", h.createOperator)
		operators.GET("/me", h.getCurrentOperator)
	}
}

// createOperator registers a new operator account.
func (h *operatorHandler) createOperator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	operator, err := h.operatorService.CreateOperator(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username is already taken"})
			return
		}
		logger.Error("Failed to create operator", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create operator"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToOperatorResponse(operator))
}

// getCurrentOperator returns the authenticated operator's own account.
func (h *operatorHandler) getCurrentOperator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Operator identity missing"})
		return
	}

	operator, err := h.operatorService.GetOperatorByID(c.Request.Context(), operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Operator not found"})
			return
		}
		logger.Error("Failed to load operator", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load operator"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponse(operator))
}
