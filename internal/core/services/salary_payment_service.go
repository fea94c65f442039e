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

type salaryPaymentService struct {
	salaryRepo portsrepo.SalaryPaymentRepositoryFacade
}

// NewSalaryPaymentService creates a new salary payment service.
func NewSalaryPaymentService(salaryRepo portsrepo.SalaryPaymentRepositoryFacade) portssvc.SalaryPaymentSvcFacade {
	return &salaryPaymentService{salaryRepo: salaryRepo}
}

var _ portssvc.SalaryPaymentSvcFacade = (*salaryPaymentService)(nil)

// CreatePayment implements portssvc.SalaryPaymentSvcFacade.
func (s *salaryPaymentService) CreatePayment(ctx context.Context, req dto.CreateSalaryPaymentRequest, operatorID string) (*domain.SalaryPayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	periodStart, err := dto.ParseDay(req.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid period start %q", apperrors.ErrValidation, req.PeriodStart)
	}
	periodEnd, err := dto.ParseDay(req.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid period end %q", apperrors.ErrValidation, req.PeriodEnd)
	}
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("%w: period end precedes period start", apperrors.ErrValidation)
	}
	paymentDate, err := dto.ParseDay(req.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payment date %q", apperrors.ErrValidation, req.PaymentDate)
	}

	payment := domain.SalaryPayment{
		PaymentID:   uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		AmountPaid:  req.AmountPaid,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		PaymentDate: paymentDate,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   operatorID,
	}

	if err := s.salaryRepo.SavePayment(ctx, payment); err != nil {
		logger.Error("Failed to save salary payment", slog.String("error", err.Error()), slog.String("employee_id", req.EmployeeID))
		return nil, fmt.Errorf("failed to save salary payment: %w", err)
	}

	logger.Info("Salary payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("employee_id", payment.EmployeeID),
		slog.String("amount_paid", payment.AmountPaid.String()),
	)
	return &payment, nil
}

// ListPaymentsForMonth implements portssvc.SalaryPaymentSvcFacade.
func (s *salaryPaymentService) ListPaymentsForMonth(ctx context.Context, employeeID string, month time.Time) ([]domain.SalaryPayment, error) {
	start, end := domain.MonthWindow(month)
	payments, err := s.salaryRepo.FindPaymentsInRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary payments for employee %s: %w", employeeID, err)
	}
	return payments, nil
}
