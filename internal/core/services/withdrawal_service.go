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

type withdrawalService struct {
	withdrawalRepo portsrepo.WithdrawalRepositoryFacade
}

// NewWithdrawalService creates a new withdrawal service.
func NewWithdrawalService(withdrawalRepo portsrepo.WithdrawalRepositoryFacade) portssvc.WithdrawalSvcFacade {
	return &withdrawalService{withdrawalRepo: withdrawalRepo}
}

var _ portssvc.WithdrawalSvcFacade = (*withdrawalService)(nil)

// CreateWithdrawal implements portssvc.WithdrawalSvcFacade. The amount's sign is not
// validated: negative rows act as manual corrections to earlier withdrawals.
func (s *withdrawalService) CreateWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest, operatorID string) (*domain.EmployeeWithdrawal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	withdrawalDate, err := dto.ParseDay(req.WithdrawalDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid withdrawal date %q", apperrors.ErrValidation, req.WithdrawalDate)
	}

	now := time.Now().UTC()
	withdrawal := domain.EmployeeWithdrawal{
		WithdrawalID:   uuid.NewString(),
		EmployeeID:     req.EmployeeID,
		Amount:         req.Amount,
		WithdrawalDate: withdrawalDate,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	if err := s.withdrawalRepo.SaveWithdrawal(ctx, withdrawal); err != nil {
		logger.Error("Failed to save withdrawal", slog.String("error", err.Error()), slog.String("employee_id", req.EmployeeID))
		return nil, fmt.Errorf("failed to save withdrawal: %w", err)
	}

	logger.Info("Withdrawal recorded",
		slog.String("withdrawal_id", withdrawal.WithdrawalID),
		slog.String("employee_id", withdrawal.EmployeeID),
		slog.String("amount", withdrawal.Amount.String()),
	)
	return &withdrawal, nil
}

// UpdateWithdrawal implements portssvc.WithdrawalSvcFacade.
func (s *withdrawalService) UpdateWithdrawal(ctx context.Context, withdrawalID string, req dto.UpdateWithdrawalRequest, operatorID string) (*domain.EmployeeWithdrawal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	withdrawal, err := s.withdrawalRepo.FindWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find withdrawal %s: %w", withdrawalID, err)
	}

	if req.Amount != nil {
		withdrawal.Amount = *req.Amount
	}
	if req.WithdrawalDate != nil {
		withdrawalDate, err := dto.ParseDay(*req.WithdrawalDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid withdrawal date %q", apperrors.ErrValidation, *req.WithdrawalDate)
		}
		withdrawal.WithdrawalDate = withdrawalDate
	}
	if req.Notes != nil {
		withdrawal.Notes = *req.Notes
	}
	withdrawal.LastUpdatedAt = time.Now().UTC()
	withdrawal.LastUpdatedBy = operatorID

	if err := s.withdrawalRepo.UpdateWithdrawal(ctx, *withdrawal); err != nil {
		logger.Error("Failed to update withdrawal", slog.String("error", err.Error()), slog.String("withdrawal_id", withdrawalID))
		return nil, fmt.Errorf("failed to update withdrawal %s: %w", withdrawalID, err)
	}

	logger.Info("Withdrawal updated", slog.String("withdrawal_id", withdrawalID))
	return withdrawal, nil
}

// DeleteWithdrawal implements portssvc.WithdrawalSvcFacade.
func (s *withdrawalService) DeleteWithdrawal(ctx context.Context, withdrawalID string, operatorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.withdrawalRepo.FindWithdrawalByID(ctx, withdrawalID); err != nil {
		return fmt.Errorf("failed to find withdrawal %s: %w", withdrawalID, err)
	}
	if err := s.withdrawalRepo.DeleteWithdrawal(ctx, withdrawalID); err != nil {
		logger.Error("Failed to delete withdrawal", slog.String("error", err.Error()), slog.String("withdrawal_id", withdrawalID))
		return fmt.Errorf("failed to delete withdrawal %s: %w", withdrawalID, err)
	}

	logger.Info("Withdrawal deleted", slog.String("withdrawal_id", withdrawalID), slog.String("deleted_by", operatorID))
	return nil
}

// ListWithdrawalsForMonth implements portssvc.WithdrawalSvcFacade.
func (s *withdrawalService) ListWithdrawalsForMonth(ctx context.Context, employeeID string, month time.Time) ([]domain.EmployeeWithdrawal, error) {
	start, end := domain.MonthWindow(month)
	withdrawals, err := s.withdrawalRepo.FindWithdrawalsInRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals for employee %s: %w", employeeID, err)
	}
	return withdrawals, nil
}
