package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeWithdrawal is a cash advance taken by an employee against accrued earnings.
// Created freely; deletable and updatable independently of any closure.
type EmployeeWithdrawal struct {
	WithdrawalID   string          `json:"withdrawalID"`
	EmployeeID     string          `json:"employeeID"`
	Amount         decimal.Decimal `json:"amount"`
	WithdrawalDate time.Time       `json:"withdrawalDate"`
	Notes          string          `json:"notes"`
	AuditFields
}

// SalaryPayment is a disbursement against an employee's accrued balance.
type SalaryPayment struct {
	PaymentID   string          `json:"paymentID"`
	EmployeeID  string          `json:"employeeID"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	PaymentDate time.Time       `json:"paymentDate"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// AttendanceRecord contributes one day's earnings to an employee's balance.
type AttendanceRecord struct {
	AttendanceID    string          `json:"attendanceID"`
	EmployeeID      string          `json:"employeeID"`
	WorkDate        time.Time       `json:"workDate"`
	DailyWageEarned decimal.Decimal `json:"dailyWageEarned"`
	BonusAmount     decimal.Decimal `json:"bonusAmount"`
	DeductionAmount decimal.Decimal `json:"deductionAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// EmployeeBalance is the derived monthly balance for one employee. It is recomputed
// fresh on every read; no running balance is ever persisted.
type EmployeeBalance struct {
	EmployeeID       string          `json:"employeeID"`
	Month            time.Time       `json:"month"` // first day of the month
	TotalEarnings    decimal.Decimal `json:"totalEarnings"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	PresentDays      int             `json:"presentDays"`
}

// MonthWindow returns the half-open interval [first day of month, first day of next month)
// for the month containing t, in t's location.
func MonthWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0)
	return start, end
}

// SumAttendanceEarnings totals wage + bonus - deduction over the given records.
func SumAttendanceEarnings(records []AttendanceRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.DailyWageEarned).Add(r.BonusAmount).Sub(r.DeductionAmount)
	}
	return total
}
