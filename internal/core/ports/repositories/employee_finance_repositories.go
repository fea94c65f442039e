package repositories

import (
	"context"
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
)

// AttendanceReader defines read operations for attendance data
type AttendanceReader interface {
	// FindAttendanceInRange retrieves an employee's attendance rows with
	// work_date in [start, end).
	FindAttendanceInRange(ctx context.Context, employeeID string, start, end time.Time) ([]domain.AttendanceRecord, error)
}

// AttendanceWriter defines write operations for attendance data
type AttendanceWriter interface {
	// SaveAttendance persists a new attendance record.
	SaveAttendance(ctx context.Context, record domain.AttendanceRecord) error
}

// AttendanceRepositoryFacade combines attendance repository interfaces
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}

// WithdrawalReader defines read operations for withdrawal data
type WithdrawalReader interface {
	// FindWithdrawalByID retrieves a specific withdrawal by its id.
	FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.EmployeeWithdrawal, error)

	// FindWithdrawalsInRange retrieves an employee's withdrawals with
	// withdrawal_date in [start, end).
	FindWithdrawalsInRange(ctx context.Context, employeeID string, start, end time.Time) ([]domain.EmployeeWithdrawal, error)
}

// WithdrawalWriter defines write operations for withdrawal data
type WithdrawalWriter interface {
	// SaveWithdrawal persists a new withdrawal.
	SaveWithdrawal(ctx context.Context, withdrawal domain.EmployeeWithdrawal) error

	// UpdateWithdrawal updates an existing withdrawal.
	UpdateWithdrawal(ctx context.Context, withdrawal domain.EmployeeWithdrawal) error

	// DeleteWithdrawal removes a withdrawal by id.
	DeleteWithdrawal(ctx context.Context, withdrawalID string) error
}

// WithdrawalRepositoryFacade combines withdrawal repository interfaces
type WithdrawalRepositoryFacade interface {
	WithdrawalReader
	WithdrawalWriter
}

// SalaryPaymentReader defines read operations for salary payment data
type SalaryPaymentReader interface {
	// FindPaymentsInRange retrieves an employee's salary payments with
	// payment_date in [start, end).
	FindPaymentsInRange(ctx context.Context, employeeID string, start, end time.Time) ([]domain.SalaryPayment, error)
}

// SalaryPaymentWriter defines write operations for salary payment data
type SalaryPaymentWriter interface {
	// SavePayment persists a new salary payment.
	SavePayment(ctx context.Context, payment domain.SalaryPayment) error
}

// SalaryPaymentRepositoryFacade combines salary payment repository interfaces
type SalaryPaymentRepositoryFacade interface {
	SalaryPaymentReader
	SalaryPaymentWriter
}
