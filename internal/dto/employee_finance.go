package dto

import (
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmployeeBalanceResponse is the derived monthly balance for one employee.
type EmployeeBalanceResponse struct {
	EmployeeID       string          `json:"employeeID"`
	Month            string          `json:"month"` // YYYY-MM
	TotalEarnings    decimal.Decimal `json:"totalEarnings"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	PresentDays      int             `json:"presentDays"`
}

// ToEmployeeBalanceResponse converts a domain.EmployeeBalance to its response DTO.
func ToEmployeeBalanceResponse(b *domain.EmployeeBalance) EmployeeBalanceResponse {
	return EmployeeBalanceResponse{
		EmployeeID:       b.EmployeeID,
		Month:            b.Month.Format("2006-01"),
		TotalEarnings:    b.TotalEarnings,
		TotalWithdrawals: b.TotalWithdrawals,
		TotalPaid:        b.TotalPaid,
		CurrentBalance:   b.CurrentBalance,
		PresentDays:      b.PresentDays,
	}
}
