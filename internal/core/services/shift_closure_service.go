package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
	"github.com/qahwatech/cafe_backoffice_app/internal/middleware"
)

// shiftClosureService runs the shift cash-reconciliation workflow.
//
// The workflow is multi-phase against three tables without a spanning transaction:
// read expenses, insert closure, copy snapshot to the archive, purge live rows. A row
// inserted into expenses between the snapshot read and a successful delete-by-date is
// lost from both live table and archive; the delete-by-ids fallback never has this
// problem because it only touches the captured snapshot.
type shiftClosureService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	closureRepo portsrepo.ShiftClosureRepositoryFacade
}

// NewShiftClosureService creates a new shift closure service.
func NewShiftClosureService(closureRepo portsrepo.ShiftClosureRepositoryFacade, expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ShiftClosureSvcFacade {
	return &shiftClosureService{
		expenseRepo: expenseRepo,
		closureRepo: closureRepo,
	}
}

var _ portssvc.ShiftClosureSvcFacade = (*shiftClosureService)(nil)

// CloseShift implements portssvc.ShiftClosureSvcFacade.
//
// Phases, strictly in order:
//  1. snapshot the day's live expenses (failure aborts everything);
//  2. compute the drawer reconciliation and insert the closure row (failure aborts
//     before any archival or purge; a duplicate (shift_type, shift_date) is rejected);
//  3. archive the snapshot under the closure id, best effort: a failure is logged and
//     swallowed because the committed closure takes priority over archival completeness;
//  4. purge the live rows: delete-by-date first, delete-by-ids fallback; if both fail
//     the whole operation fails loudly even though the closure row stands.
func (s *shiftClosureService) CloseShift(ctx context.Context, req dto.CloseShiftRequest, operatorID string) (*domain.ShiftClosure, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	shiftDate, err := dto.ParseDay(req.ShiftDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid shift date %q", apperrors.ErrValidation, req.ShiftDate)
	}

	// Phase 1: snapshot the day's live expenses.
	expenses, err := s.expenseRepo.FindExpensesByDate(ctx, shiftDate)
	if err != nil {
		logger.Error("Failed to load expenses for shift closure", slog.String("error", err.Error()), slog.String("shift_date", req.ShiftDate))
		return nil, fmt.Errorf("failed to load expenses for %s: %w", req.ShiftDate, err)
	}
	expensesTotal := domain.SumExpenses(expenses)
	expenseIDs := domain.ExpenseIDs(expenses)

	// Phase 2: compute and persist the closure.
	counted := req.Counted()
	carry := req.Carry()
	sales := req.Sales()
	recon := domain.ReconcileDrawer(counted, carry, sales, req.ScreenSales, expensesTotal)

	now := time.Now().UTC()
	closure := domain.ShiftClosure{
		ClosureID:       uuid.NewString(),
		ShiftType:       domain.ShiftType(req.ShiftType),
		ShiftDate:       shiftDate,
		Counted:         counted,
		Carry:           carry,
		Sales:           sales,
		ScreenSales:     req.ScreenSales,
		ShiftExpenses:   expensesTotal,
		TotalActual:     recon.TotalActual,
		TotalCalculated: recon.TotalCalculated,
		Difference:      recon.Difference,
		CreatedAt:       now,
		CreatedBy:       operatorID,
	}

	if err := s.closureRepo.SaveClosure(ctx, closure); err != nil {
		logger.Error("Failed to save shift closure", slog.String("error", err.Error()), slog.String("shift_date", req.ShiftDate), slog.String("shift_type", req.ShiftType))
		return nil, fmt.Errorf("failed to save shift closure: %w", err)
	}
	logger.Info("Shift closure saved",
		slog.String("closure_id", closure.ClosureID),
		slog.String("shift_type", req.ShiftType),
		slog.String("shift_date", req.ShiftDate),
		slog.String("difference", closure.Difference.String()),
		slog.Int("expense_count", len(expenses)),
	)

	// Phase 3: archive the snapshot. Soft failure: the closure is already committed.
	if len(expenses) > 0 {
		if err := s.closureRepo.ArchiveExpenses(ctx, closure.ClosureID, now, expenses); err != nil {
			logger.Error("Failed to archive expenses for closure, continuing",
				slog.String("error", err.Error()),
				slog.String("closure_id", closure.ClosureID),
				slog.Int("expense_count", len(expenses)),
			)
		}
	}

	// Phase 4: purge the live rows consumed by this closure.
	if err := s.purgeExpenses(ctx, shiftDate, expenseIDs); err != nil {
		return nil, err
	}

	return &closure, nil
}

// purgeExpenses removes the live expense rows for the closed day. Primary strategy is a
// bulk delete-by-date; on error it falls back to deleting the captured id set. Both
// strategies failing is a hard error: the closure row already stands, so the day's
// expenses are double-counted until the purge is retried.
func (s *shiftClosureService) purgeExpenses(ctx context.Context, shiftDate time.Time, expenseIDs []string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(expenseIDs) == 0 {
		// Nothing was captured, nothing to delete.
		return nil
	}

	deleted, err := s.expenseRepo.DeleteExpensesByDate(ctx, shiftDate)
	if err == nil {
		logger.Info("Purged expenses by date", slog.Int64("deleted", deleted), slog.Time("shift_date", shiftDate))
		return nil
	}
	logger.Warn("Delete-by-date failed, falling back to id list", slog.String("error", err.Error()), slog.Time("shift_date", shiftDate))

	deleted, idErr := s.expenseRepo.DeleteExpensesByIDs(ctx, expenseIDs)
	if idErr != nil {
		logger.Error("Both purge strategies failed",
			slog.String("date_error", err.Error()),
			slog.String("id_error", idErr.Error()),
			slog.Int("expense_count", len(expenseIDs)),
		)
		return fmt.Errorf("%w: could not remove %d expense rows for the closed shift, retry the operation: %v", apperrors.ErrPurgeFailed, len(expenseIDs), idErr)
	}
	if deleted == 0 {
		// The snapshot was non-empty, so zero deletions means the id list no longer
		// matches any live row. Distinguish this from a true no-op and fail loudly.
		logger.Error("Id-list purge deleted no rows for a non-empty snapshot", slog.Int("expense_count", len(expenseIDs)))
		return fmt.Errorf("%w: no expenses deleted for a non-empty snapshot, retry the operation", apperrors.ErrPurgeFailed)
	}

	logger.Info("Purged expenses by id list", slog.Int64("deleted", deleted))
	return nil
}

// GetClosureByID implements portssvc.ShiftClosureSvcFacade.
func (s *shiftClosureService) GetClosureByID(ctx context.Context, closureID string) (*domain.ShiftClosure, error) {
	closure, err := s.closureRepo.FindClosureByID(ctx, closureID)
	if err != nil {
		return nil, fmt.Errorf("failed to find closure %s: %w", closureID, err)
	}
	return closure, nil
}

// ListClosures implements portssvc.ShiftClosureSvcFacade.
func (s *shiftClosureService) ListClosures(ctx context.Context, limit int, offset int) ([]domain.ShiftClosure, error) {
	if limit <= 0 {
		limit = 20
	}
	closures, err := s.closureRepo.ListClosures(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list closures: %w", err)
	}
	return closures, nil
}

// ListArchivedExpenses implements portssvc.ShiftClosureSvcFacade.
func (s *shiftClosureService) ListArchivedExpenses(ctx context.Context, closureID string) ([]domain.ArchivedExpense, error) {
	archived, err := s.closureRepo.FindArchivedExpensesByClosure(ctx, closureID)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived expenses for closure %s: %w", closureID, err)
	}
	return archived, nil
}
