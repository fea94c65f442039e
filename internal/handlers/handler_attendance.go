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

// attendanceHandler handles HTTP requests for attendance records.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

// registerAttendanceRoutes registers routes related to attendance.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.POST("", h.createAttendance)
		attendance.GET("", h.listAttendance)
	}
}

func (h *attendanceHandler) createAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAttendance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.attendanceService.CreateAttendance(c.Request.Context(), req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create attendance record in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attendance record"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(record))
}

// listAttendance lists one employee's attendance for a month
// (?employeeID=...&month=YYYY-MM, month defaults to the current month).
func (h *attendanceHandler) listAttendance(c *gin.Context) {
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

	records, err := h.attendanceService.ListAttendanceForMonth(c.Request.Context(), employeeID, month)
	if err != nil {
		logger.Error("Failed to list attendance records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list attendance records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponses(records))
}
