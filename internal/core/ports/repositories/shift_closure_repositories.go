package repositories

import (
	"context"
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
)

// ShiftClosureReader defines read operations for closure data
type ShiftClosureReader interface {
	// FindClosureByID retrieves a specific closure by its id.
	FindClosureByID(ctx context.Context, closureID string) (*domain.ShiftClosure, error)

	// ListClosures retrieves a paginated list of closures, newest first.
	ListClosures(ctx context.Context, limit int, offset int) ([]domain.ShiftClosure, error)
}

// ShiftClosureWriter defines write operations for closure data
type ShiftClosureWriter interface {
	// SaveClosure persists a new shift closure as a single all-or-nothing insert.
	// A second closure for the same (shift_type, shift_date) fails with ErrDuplicate.
	SaveClosure(ctx context.Context, closure domain.ShiftClosure) error
}

// ExpenseArchiver defines operations on the immutable archived-expense copies.
type ExpenseArchiver interface {
	// ArchiveExpenses copies the given live expenses into the archive, tagged with the
	// owning closure id.
	ArchiveExpenses(ctx context.Context, closureID string, archivedAt time.Time, expenses []domain.Expense) error

	// FindArchivedExpensesByClosure retrieves the archived copies owned by a closure.
	FindArchivedExpensesByClosure(ctx context.Context, closureID string) ([]domain.ArchivedExpense, error)
}

// ShiftClosureRepositoryFacade combines all closure-related repository interfaces
type ShiftClosureRepositoryFacade interface {
	ShiftClosureReader
	ShiftClosureWriter
	ExpenseArchiver
}
