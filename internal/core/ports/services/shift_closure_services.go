package services

import (
	"context"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
)

// ShiftClosureSvcFacade is the shift reconciliation engine and its read surface.
type ShiftClosureSvcFacade interface {
	// CloseShift runs the full closure workflow: load the day's expenses, compute the
	// reconciliation totals, persist the closure row, archive the expense snapshot
	// (best effort) and purge the live rows (hard failure if both strategies fail).
	CloseShift(ctx context.Context, req dto.CloseShiftRequest, operatorID string) (*domain.ShiftClosure, error)

	// GetClosureByID retrieves a specific closure.
	GetClosureByID(ctx context.Context, closureID string) (*domain.ShiftClosure, error)

	// ListClosures retrieves a paginated list of closures, newest first.
	ListClosures(ctx context.Context, limit int, offset int) ([]domain.ShiftClosure, error)

	// ListArchivedExpenses retrieves the archived copies owned by a closure.
	ListArchivedExpenses(ctx context.Context, closureID string) ([]domain.ArchivedExpense, error)
}
