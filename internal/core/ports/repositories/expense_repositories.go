package repositories

import (
	"context"
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
)

// ExpenseReader defines read operations for live expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific live expense by its id.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// FindExpensesByDate retrieves all live expense rows for the given calendar day.
	FindExpensesByDate(ctx context.Context, date time.Time) ([]domain.Expense, error)

	// ListExpenses retrieves a paginated list of live expenses, newest first.
	ListExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for live expense data
type ExpenseWriter interface {
	// SaveExpense persists a new live expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense updates an existing live expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes a single live expense by id.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpensePurger defines the bulk deletion strategies used by the shift-closure purge step.
type ExpensePurger interface {
	// DeleteExpensesByDate bulk-deletes all live expenses for the given day in one
	// statement and reports the number of rows removed.
	DeleteExpensesByDate(ctx context.Context, date time.Time) (int64, error)

	// DeleteExpensesByIDs deletes the given expense ids and reports the number of rows
	// removed. This is the race-free fallback: only rows captured in the closure
	// snapshot can be affected.
	DeleteExpensesByIDs(ctx context.Context, expenseIDs []string) (int64, error)
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
	ExpensePurger
}
