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

// expenseService manages live expenses. Only live rows are ever mutated here; once a
// shift closure archives a row the copy belongs to the closure and is out of reach.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense implements portssvc.ExpenseSvcFacade.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, operatorID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expenseDate, err := dto.ParseDay(req.ExpenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expense date %q", apperrors.ErrValidation, req.ExpenseDate)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		ExpenseDate: expenseDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	logger.Info("Expense created", slog.String("expense_id", expense.ExpenseID), slog.String("category", expense.Category))
	return &expense, nil
}

// UpdateExpense implements portssvc.ExpenseSvcFacade.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, operatorID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	if req.Title != nil {
		expense.Title = *req.Title
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.ExpenseDate != nil {
		expenseDate, err := dto.ParseDay(*req.ExpenseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expense date %q", apperrors.ErrValidation, *req.ExpenseDate)
		}
		expense.ExpenseDate = expenseDate
	}
	expense.LastUpdatedAt = time.Now().UTC()
	expense.LastUpdatedBy = operatorID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		logger.Error("Failed to update expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}

	logger.Info("Expense updated", slog.String("expense_id", expenseID))
	return expense, nil
}

// DeleteExpense implements portssvc.ExpenseSvcFacade.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, operatorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.expenseRepo.FindExpenseByID(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		logger.Error("Failed to delete expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID), slog.String("deleted_by", operatorID))
	return nil
}

// GetExpenseByID implements portssvc.ExpenseSvcFacade.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return expense, nil
}

// ListExpensesByDate implements portssvc.ExpenseSvcFacade.
func (s *expenseService) ListExpensesByDate(ctx context.Context, date time.Time) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindExpensesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for %s: %w", dto.FormatDay(date), err)
	}
	return expenses, nil
}

// ListExpenses implements portssvc.ExpenseSvcFacade.
func (s *expenseService) ListExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = 20
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}
