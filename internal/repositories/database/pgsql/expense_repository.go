package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
	"github.com/qahwatech/cafe_backoffice_app/internal/models"
	"github.com/qahwatech/cafe_backoffice_app/internal/utils/mapping"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for live expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, title, description, amount, category, expense_date, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var e models.Expense
	err := row.Scan(
		&e.ExpenseID,
		&e.Title,
		&e.Description,
		&e.Amount,
		&e.Category,
		&e.ExpenseDate,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

// SaveExpense inserts a new live expense row.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExp := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelExp.ExpenseID,
		modelExp.Title,
		modelExp.Description,
		modelExp.Amount,
		modelExp.Category,
		modelExp.ExpenseDate,
		modelExp.CreatedAt,
		modelExp.CreatedBy,
		modelExp.LastUpdatedAt,
		modelExp.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", modelExp.ExpenseID, err)
	}
	return nil
}

// UpdateExpense updates an existing live expense row.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	modelExp := mapping.ToModelExpense(expense)

	query := `
		UPDATE expenses
		SET title = $2, description = $3, amount = $4, category = $5, expense_date = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE expense_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelExp.ExpenseID,
		modelExp.Title,
		modelExp.Description,
		modelExp.Amount,
		modelExp.Category,
		modelExp.ExpenseDate,
		modelExp.LastUpdatedAt,
		modelExp.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", modelExp.ExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes a single live expense row.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindExpenseByID retrieves a live expense by its id.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`

	modelExp, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by id %s: %w", expenseID, err)
	}

	domainExp := mapping.ToDomainExpense(modelExp)
	return &domainExp, nil
}

// FindExpensesByDate retrieves all live expense rows for the given calendar day.
func (r *PgxExpenseRepository) FindExpensesByDate(ctx context.Context, date time.Time) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_date = $1 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for date: %w", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	expenses := make([]domain.Expense, len(modelExpenses))
	for i, m := range modelExpenses {
		expenses[i] = mapping.ToDomainExpense(m)
	}
	return expenses, nil
}

// ListExpenses retrieves a paginated list of live expenses, newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY expense_date DESC, created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	expenses := make([]domain.Expense, len(modelExpenses))
	for i, m := range modelExpenses {
		expenses[i] = mapping.ToDomainExpense(m)
	}
	return expenses, nil
}

// DeleteExpensesByDate bulk-deletes all live expenses for a day in one statement.
func (r *PgxExpenseRepository) DeleteExpensesByDate(ctx context.Context, date time.Time) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_date = $1;`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expenses for date: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteExpensesByIDs deletes exactly the given expense ids.
func (r *PgxExpenseRepository) DeleteExpensesByIDs(ctx context.Context, expenseIDs []string) (int64, error) {
	if len(expenseIDs) == 0 {
		return 0, nil
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = ANY($1);`, expenseIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expenses by ids: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
