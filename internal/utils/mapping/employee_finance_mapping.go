package mapping

import (
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/qahwatech/cafe_backoffice_app/internal/models"
)

// ToModelWithdrawal converts a domain withdrawal to its DB model.
func ToModelWithdrawal(w domain.EmployeeWithdrawal) models.EmployeeWithdrawal {
	return models.EmployeeWithdrawal{
		WithdrawalID:   w.WithdrawalID,
		EmployeeID:     w.EmployeeID,
		Amount:         w.Amount,
		WithdrawalDate: w.WithdrawalDate,
		Notes:          w.Notes,
		AuditFields:    ToModelAuditFields(w.AuditFields),
	}
}

// ToDomainWithdrawal converts a DB model withdrawal to its domain form.
func ToDomainWithdrawal(w models.EmployeeWithdrawal) domain.EmployeeWithdrawal {
	return domain.EmployeeWithdrawal{
		WithdrawalID:   w.WithdrawalID,
		EmployeeID:     w.EmployeeID,
		Amount:         w.Amount,
		WithdrawalDate: w.WithdrawalDate,
		Notes:          w.Notes,
		AuditFields:    ToDomainAuditFields(w.AuditFields),
	}
}

// ToModelSalaryPayment converts a domain salary payment to its DB model.
func ToModelSalaryPayment(p domain.SalaryPayment) models.SalaryPayment {
	return models.SalaryPayment{
		PaymentID:   p.PaymentID,
		EmployeeID:  p.EmployeeID,
		AmountPaid:  p.AmountPaid,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		PaymentDate: p.PaymentDate,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
}

// ToDomainSalaryPayment converts a DB model salary payment to its domain form.
func ToDomainSalaryPayment(p models.SalaryPayment) domain.SalaryPayment {
	return domain.SalaryPayment{
		PaymentID:   p.PaymentID,
		EmployeeID:  p.EmployeeID,
		AmountPaid:  p.AmountPaid,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		PaymentDate: p.PaymentDate,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
}

// ToModelAttendance converts a domain attendance record to its DB model.
func ToModelAttendance(r domain.AttendanceRecord) models.AttendanceRecord {
	return models.AttendanceRecord{
		AttendanceID:    r.AttendanceID,
		EmployeeID:      r.EmployeeID,
		WorkDate:        r.WorkDate,
		DailyWageEarned: r.DailyWageEarned,
		BonusAmount:     r.BonusAmount,
		DeductionAmount: r.DeductionAmount,
		CreatedAt:       r.CreatedAt,
		CreatedBy:       r.CreatedBy,
	}
}

// ToDomainAttendance converts a DB model attendance record to its domain form.
func ToDomainAttendance(r models.AttendanceRecord) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		AttendanceID:    r.AttendanceID,
		EmployeeID:      r.EmployeeID,
		WorkDate:        r.WorkDate,
		DailyWageEarned: r.DailyWageEarned,
		BonusAmount:     r.BonusAmount,
		DeductionAmount: r.DeductionAmount,
		CreatedAt:       r.CreatedAt,
		CreatedBy:       r.CreatedBy,
	}
}
