package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
	"github.com/qahwatech/cafe_backoffice_app/internal/models"
	"github.com/qahwatech/cafe_backoffice_app/internal/utils/mapping"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for closure-spanning reports.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingReader {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportingReader = (*PgxReportingRepository)(nil)

// AggregateExpenses aggregates live and archived expenses per day and category for
// dates in [from, to]. The closure workflow purges live rows as it archives them, so
// the union never double counts a date.
func (r *PgxReportingRepository) AggregateExpenses(ctx context.Context, from, to time.Time) ([]portsrepo.ExpenseReportRow, error) {
	query := `
		SELECT expense_date, category, SUM(amount) AS total, COUNT(*) AS cnt, archived
		FROM (
			SELECT expense_date, category, amount, FALSE AS archived
			FROM expenses
			WHERE expense_date >= $1 AND expense_date <= $2
			UNION ALL
			SELECT expense_date, category, amount, TRUE AS archived
			FROM archived_expenses
			WHERE expense_date >= $1 AND expense_date <= $2
		) combined
		GROUP BY expense_date, category, archived
		ORDER BY expense_date, category;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense aggregates: %w", err)
	}
	defer rows.Close()

	reportRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (portsrepo.ExpenseReportRow, error) {
		var rr portsrepo.ExpenseReportRow
		err := row.Scan(&rr.Date, &rr.Category, &rr.Total, &rr.Count, &rr.Archived)
		return rr, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense aggregates: %w", err)
	}
	return reportRows, nil
}

// FindArchivedExpensesInRange lists raw archived rows with expense_date in [from, to].
func (r *PgxReportingRepository) FindArchivedExpensesInRange(ctx context.Context, from, to time.Time) ([]domain.ArchivedExpense, error) {
	query := `
		SELECT archived_expense_id, closure_id, title, description, amount, category, expense_date, created_by, archived_at
		FROM archived_expenses
		WHERE expense_date >= $1 AND expense_date <= $2
		ORDER BY expense_date, archived_expense_id;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query archived expenses in range: %w", err)
	}
	defer rows.Close()

	modelArchived, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ArchivedExpense, error) {
		var a models.ArchivedExpense
		err := row.Scan(
			&a.ArchivedExpenseID,
			&a.ClosureID,
			&a.Title,
			&a.Description,
			&a.Amount,
			&a.Category,
			&a.ExpenseDate,
			&a.CreatedBy,
			&a.ArchivedAt,
		)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan archived expenses in range: %w", err)
	}

	archived := make([]domain.ArchivedExpense, len(modelArchived))
	for i, m := range modelArchived {
		archived[i] = mapping.ToDomainArchivedExpense(m)
	}
	return archived, nil
}
