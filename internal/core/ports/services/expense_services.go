package services

import (
	"context"
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for live expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific live expense.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByDate retrieves all live expenses for a calendar day. Pure read,
	// idempotent, safe to call repeatedly before a closure commits.
	ListExpensesByDate(ctx context.Context, date time.Time) ([]domain.Expense, error)

	// ListExpenses retrieves a paginated list of live expenses.
	ListExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for live expense data
type ExpenseWriterSvc interface {
	// CreateExpense persists a new live expense stamped with the operator id.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, operatorID string) (*domain.Expense, error)

	// UpdateExpense updates an existing live expense.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, operatorID string) (*domain.Expense, error)

	// DeleteExpense removes a live expense.
	DeleteExpense(ctx context.Context, expenseID string, operatorID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
