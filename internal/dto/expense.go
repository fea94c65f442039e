package dto

import (
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the structure for creating a new live expense.
type CreateExpenseRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gte=0"`
	Category    string          `json:"category" binding:"required"`
	ExpenseDate string          `json:"expenseDate" binding:"required,datetime=2006-01-02"`
}

// UpdateExpenseRequest carries optional updates to a live expense.
type UpdateExpenseRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty" binding:"omitempty,gte=0"`
	Category    *string          `json:"category,omitempty"`
	ExpenseDate *string          `json:"expenseDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// ExpenseResponse defines the structure for API responses containing expense details.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	ExpenseDate string          `json:"expenseDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Title:       e.Title,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		ExpenseDate: FormatDay(e.ExpenseDate),
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ToExpenseResponses converts a slice of domain expenses.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
