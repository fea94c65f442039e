package services

import (
	"context"
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
)

// WithdrawalSvcFacade manages employee withdrawal records.
type WithdrawalSvcFacade interface {
	CreateWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest, operatorID string) (*domain.EmployeeWithdrawal, error)
	UpdateWithdrawal(ctx context.Context, withdrawalID string, req dto.UpdateWithdrawalRequest, operatorID string) (*domain.EmployeeWithdrawal, error)
	DeleteWithdrawal(ctx context.Context, withdrawalID string, operatorID string) error
	ListWithdrawalsForMonth(ctx context.Context, employeeID string, month time.Time) ([]domain.EmployeeWithdrawal, error)
}

// SalaryPaymentSvcFacade manages salary disbursement records.
type SalaryPaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreateSalaryPaymentRequest, operatorID string) (*domain.SalaryPayment, error)
	ListPaymentsForMonth(ctx context.Context, employeeID string, month time.Time) ([]domain.SalaryPayment, error)
}

// AttendanceSvcFacade manages attendance records.
type AttendanceSvcFacade interface {
	CreateAttendance(ctx context.Context, req dto.CreateAttendanceRequest, operatorID string) (*domain.AttendanceRecord, error)
	ListAttendanceForMonth(ctx context.Context, employeeID string, month time.Time) ([]domain.AttendanceRecord, error)
}
