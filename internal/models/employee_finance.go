package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeWithdrawal mirrors a row of the employee_withdrawals table.
type EmployeeWithdrawal struct {
	WithdrawalID   string          `db:"withdrawal_id"`
	EmployeeID     string          `db:"employee_id"`
	Amount         decimal.Decimal `db:"amount"`
	WithdrawalDate time.Time       `db:"withdrawal_date"`
	Notes          string          `db:"notes"`
	AuditFields
}

// SalaryPayment mirrors a row of the salary_payments table.
type SalaryPayment struct {
	PaymentID   string          `db:"payment_id"`
	EmployeeID  string          `db:"employee_id"`
	AmountPaid  decimal.Decimal `db:"amount_paid"`
	PeriodStart time.Time       `db:"period_start"`
	PeriodEnd   time.Time       `db:"period_end"`
	PaymentDate time.Time       `db:"payment_date"`
	Notes       string          `db:"notes"`
	CreatedAt   time.Time       `db:"created_at"`
	CreatedBy   string          `db:"created_by"`
}

// AttendanceRecord mirrors a row of the attendance_records table.
type AttendanceRecord struct {
	AttendanceID    string          `db:"attendance_id"`
	EmployeeID      string          `db:"employee_id"`
	WorkDate        time.Time       `db:"work_date"`
	DailyWageEarned decimal.Decimal `db:"daily_wage_earned"`
	BonusAmount     decimal.Decimal `db:"bonus_amount"`
	DeductionAmount decimal.Decimal `db:"deduction_amount"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}
