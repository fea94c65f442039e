package dto

import (
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWithdrawalRequest defines the structure for recording an employee withdrawal.
type CreateWithdrawalRequest struct {
	EmployeeID     string          `json:"employeeID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	WithdrawalDate string          `json:"withdrawalDate" binding:"required,datetime=2006-01-02"`
	Notes          string          `json:"notes"`
}

// UpdateWithdrawalRequest carries optional updates to a withdrawal.
type UpdateWithdrawalRequest struct {
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	WithdrawalDate *string          `json:"withdrawalDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Notes          *string          `json:"notes,omitempty"`
}

// WithdrawalResponse defines the structure for API responses containing withdrawal details.
type WithdrawalResponse struct {
	WithdrawalID   string          `json:"withdrawalID"`
	EmployeeID     string          `json:"employeeID"`
	Amount         decimal.Decimal `json:"amount"`
	WithdrawalDate string          `json:"withdrawalDate"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ToWithdrawalResponse converts a domain.EmployeeWithdrawal to WithdrawalResponse.
func ToWithdrawalResponse(w *domain.EmployeeWithdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		WithdrawalID:   w.WithdrawalID,
		EmployeeID:     w.EmployeeID,
		Amount:         w.Amount,
		WithdrawalDate: FormatDay(w.WithdrawalDate),
		Notes:          w.Notes,
		CreatedAt:      w.CreatedAt,
		CreatedBy:      w.CreatedBy,
	}
}

// ToWithdrawalResponses converts a slice of domain withdrawals.
func ToWithdrawalResponses(withdrawals []domain.EmployeeWithdrawal) []WithdrawalResponse {
	responses := make([]WithdrawalResponse, len(withdrawals))
	for i := range withdrawals {
		responses[i] = ToWithdrawalResponse(&withdrawals[i])
	}
	return responses
}
