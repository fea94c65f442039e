package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// employeeFinanceService derives employee balances from attendance, withdrawals and
// salary payments. The three reads are independent (no shared snapshot), so the result
// has as-of-now semantics rather than a single-instant view. Acceptable for a
// dashboard, not for an audited ledger.
type employeeFinanceService struct {
	attendanceRepo portsrepo.AttendanceReader
	withdrawalRepo portsrepo.WithdrawalReader
	salaryRepo     portsrepo.SalaryPaymentReader
}

// NewEmployeeFinanceService creates a new employee finance service.
func NewEmployeeFinanceService(attendanceRepo portsrepo.AttendanceReader, withdrawalRepo portsrepo.WithdrawalReader, salaryRepo portsrepo.SalaryPaymentReader) portssvc.EmployeeFinanceSvcFacade {
	return &employeeFinanceService{
		attendanceRepo: attendanceRepo,
		withdrawalRepo: withdrawalRepo,
		salaryRepo:     salaryRepo,
	}
}

var _ portssvc.EmployeeFinanceSvcFacade = (*employeeFinanceService)(nil)

// ComputeBalance implements portssvc.EmployeeFinanceSvcFacade.
//
// balance = Σ(wage + bonus − deduction) − Σ(withdrawals) − Σ(payments), all scoped to
// the month window [first day, first day of next month). Any failed read aborts the
// whole computation; no partial balance is ever returned.
func (s *employeeFinanceService) ComputeBalance(ctx context.Context, employeeID string, month time.Time) (*domain.EmployeeBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	start, end := domain.MonthWindow(month)

	attendance, err := s.attendanceRepo.FindAttendanceInRange(ctx, employeeID, start, end)
	if err != nil {
		logger.Error("Failed to load attendance for balance", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to load attendance for employee %s: %w", employeeID, err)
	}
	totalEarnings := domain.SumAttendanceEarnings(attendance)

	withdrawals, err := s.withdrawalRepo.FindWithdrawalsInRange(ctx, employeeID, start, end)
	if err != nil {
		logger.Error("Failed to load withdrawals for balance", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to load withdrawals for employee %s: %w", employeeID, err)
	}
	totalWithdrawals := decimal.Zero
	for _, w := range withdrawals {
		totalWithdrawals = totalWithdrawals.Add(w.Amount)
	}

	payments, err := s.salaryRepo.FindPaymentsInRange(ctx, employeeID, start, end)
	if err != nil {
		logger.Error("Failed to load salary payments for balance", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to load salary payments for employee %s: %w", employeeID, err)
	}
	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.AmountPaid)
	}

	balance := &domain.EmployeeBalance{
		EmployeeID:       employeeID,
		Month:            start,
		TotalEarnings:    totalEarnings,
		TotalWithdrawals: totalWithdrawals,
		TotalPaid:        totalPaid,
		CurrentBalance:   totalEarnings.Sub(totalWithdrawals).Sub(totalPaid),
		PresentDays:      len(attendance),
	}

	logger.Debug("Employee balance computed",
		slog.String("employee_id", employeeID),
		slog.String("balance", balance.CurrentBalance.String()),
		slog.Int("present_days", balance.PresentDays),
	)
	return balance, nil
}
