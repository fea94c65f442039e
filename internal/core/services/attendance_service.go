package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
	"github.com/qahwatech/cafe_backoffice_app/internal/middleware"
)

type attendanceService struct {
	attendanceRepo portsrepo.AttendanceRepositoryFacade
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(attendanceRepo portsrepo.AttendanceRepositoryFacade) portssvc.AttendanceSvcFacade {
	return &attendanceService{attendanceRepo: attendanceRepo}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

// CreateAttendance implements portssvc.AttendanceSvcFacade.
func (s *attendanceService) CreateAttendance(ctx context.Context, req dto.CreateAttendanceRequest, operatorID string) (*domain.AttendanceRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	workDate, err := dto.ParseDay(req.WorkDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid work date %q", apperrors.ErrValidation, req.WorkDate)
	}

	record := domain.AttendanceRecord{
		AttendanceID:    uuid.NewString(),
		EmployeeID:      req.EmployeeID,
		WorkDate:        workDate,
		DailyWageEarned: req.DailyWageEarned,
		BonusAmount:     req.BonusAmount,
		DeductionAmount: req.DeductionAmount,
		CreatedAt:       time.Now().UTC(),
		CreatedBy:       operatorID,
	}

	if err := s.attendanceRepo.SaveAttendance(ctx, record); err != nil {
		logger.Error("Failed to save attendance record", slog.String("error", err.Error()), slog.String("employee_id", req.EmployeeID))
		return nil, fmt.Errorf("failed to save attendance record: %w", err)
	}

	logger.Info("Attendance recorded",
		slog.String("attendance_id", record.AttendanceID),
		slog.String("employee_id", record.EmployeeID),
		slog.String("work_date", req.WorkDate),
	)
	return &record, nil
}

// ListAttendanceForMonth implements portssvc.AttendanceSvcFacade.
func (s *attendanceService) ListAttendanceForMonth(ctx context.Context, employeeID string, month time.Time) ([]domain.AttendanceRecord, error) {
	start, end := domain.MonthWindow(month)
	records, err := s.attendanceRepo.FindAttendanceInRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}
	return records, nil
}
