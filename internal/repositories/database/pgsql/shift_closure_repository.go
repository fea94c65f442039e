package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
	"github.com/qahwatech/cafe_backoffice_app/internal/models"
	"github.com/qahwatech/cafe_backoffice_app/internal/utils/mapping"
)

type PgxShiftClosureRepository struct {
	BaseRepository
}

// newPgxShiftClosureRepository creates a new repository for closure and archive data.
func newPgxShiftClosureRepository(pool *pgxpool.Pool) portsrepo.ShiftClosureRepositoryFacade {
	return &PgxShiftClosureRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ShiftClosureRepositoryFacade = (*PgxShiftClosureRepository)(nil)

const closureColumns = `closure_id, shift_type, shift_date,
	coins_small, coins_one_dinar, bills_large,
	prev_coins_small, prev_coins_one_dinar, prev_bills_large,
	cash_sales, card_sales, tadawul_sales, presto_sales,
	screen_sales, shift_expenses, total_actual, total_calculated, difference,
	created_at, created_by`

func scanShiftClosure(row pgx.Row) (models.ShiftClosure, error) {
	var c models.ShiftClosure
	err := row.Scan(
		&c.ClosureID,
		&c.ShiftType,
		&c.ShiftDate,
		&c.CoinsSmall,
		&c.CoinsOneDinar,
		&c.BillsLarge,
		&c.PrevCoinsSmall,
		&c.PrevCoinsOneDinar,
		&c.PrevBillsLarge,
		&c.CashSales,
		&c.CardSales,
		&c.TadawulSales,
		&c.PrestoSales,
		&c.ScreenSales,
		&c.ShiftExpenses,
		&c.TotalActual,
		&c.TotalCalculated,
		&c.Difference,
		&c.CreatedAt,
		&c.CreatedBy,
	)
	return c, err
}

// SaveClosure persists a new shift closure as a single all-or-nothing insert. The
// UNIQUE(shift_type, shift_date) constraint rejects a second closure for the same shift.
func (r *PgxShiftClosureRepository) SaveClosure(ctx context.Context, closure domain.ShiftClosure) error {
	modelClosure := mapping.ToModelShiftClosure(closure)

	query := `
		INSERT INTO shift_closures (` + closureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelClosure.ClosureID,
		modelClosure.ShiftType,
		modelClosure.ShiftDate,
		modelClosure.CoinsSmall,
		modelClosure.CoinsOneDinar,
		modelClosure.BillsLarge,
		modelClosure.PrevCoinsSmall,
		modelClosure.PrevCoinsOneDinar,
		modelClosure.PrevBillsLarge,
		modelClosure.CashSales,
		modelClosure.CardSales,
		modelClosure.TadawulSales,
		modelClosure.PrestoSales,
		modelClosure.ScreenSales,
		modelClosure.ShiftExpenses,
		modelClosure.TotalActual,
		modelClosure.TotalCalculated,
		modelClosure.Difference,
		modelClosure.CreatedAt,
		modelClosure.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: shift %s on %s is already closed", apperrors.ErrDuplicate,
				modelClosure.ShiftType, modelClosure.ShiftDate.Format("2006-01-02"))
		}
		return fmt.Errorf("failed to save shift closure %s: %w", modelClosure.ClosureID, err)
	}
	return nil
}

// FindClosureByID retrieves a closure by its id.
func (r *PgxShiftClosureRepository) FindClosureByID(ctx context.Context, closureID string) (*domain.ShiftClosure, error) {
	query := `SELECT ` + closureColumns + ` FROM shift_closures WHERE closure_id = $1;`

	modelClosure, err := scanShiftClosure(r.Pool.QueryRow(ctx, query, closureID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find closure by id %s: %w", closureID, err)
	}

	domainClosure := mapping.ToDomainShiftClosure(modelClosure)
	return &domainClosure, nil
}

// ListClosures retrieves a paginated list of closures, newest first.
func (r *PgxShiftClosureRepository) ListClosures(ctx context.Context, limit int, offset int) ([]domain.ShiftClosure, error) {
	query := `SELECT ` + closureColumns + ` FROM shift_closures ORDER BY shift_date DESC, created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query closures: %w", err)
	}
	defer rows.Close()

	modelClosures, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ShiftClosure, error) {
		return scanShiftClosure(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan closures: %w", err)
	}

	closures := make([]domain.ShiftClosure, len(modelClosures))
	for i, m := range modelClosures {
		closures[i] = mapping.ToDomainShiftClosure(m)
	}
	return closures, nil
}

// ArchiveExpenses copies the given live expenses into archived_expenses, tagged with
// the owning closure id. The copy runs inside a single transaction: either the whole
// snapshot lands in the archive or none of it does.
func (r *PgxShiftClosureRepository) ArchiveExpenses(ctx context.Context, closureID string, archivedAt time.Time, expenses []domain.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin archive transaction for closure %s: %w", closureID, err)
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	query := `
		INSERT INTO archived_expenses (archived_expense_id, closure_id, title, description, amount, category, expense_date, created_by, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, e := range expenses {
		batch.Queue(query,
			uuid.NewString(),
			closureID,
			e.Title,
			e.Description,
			e.Amount,
			e.Category,
			e.ExpenseDate,
			e.CreatedBy,
			archivedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range expenses {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to archive expenses for closure %s: %w", closureID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close archive batch for closure %s: %w", closureID, err)
	}

	return r.Commit(ctx, tx)
}

// FindArchivedExpensesByClosure retrieves the archived copies owned by a closure.
func (r *PgxShiftClosureRepository) FindArchivedExpensesByClosure(ctx context.Context, closureID string) ([]domain.ArchivedExpense, error) {
	query := `
		SELECT archived_expense_id, closure_id, title, description, amount, category, expense_date, created_by, archived_at
		FROM archived_expenses
		WHERE closure_id = $1
		ORDER BY expense_date, archived_expense_id;
	`
	rows, err := r.Pool.Query(ctx, query, closureID)
	if err != nil {
		return nil, fmt.Errorf("failed to query archived expenses: %w", err)
	}
	defer rows.Close()

	modelArchived, err := pgx.CollectRows(rows, scanArchivedExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to scan archived expenses: %w", err)
	}

	archived := make([]domain.ArchivedExpense, len(modelArchived))
	for i, m := range modelArchived {
		archived[i] = mapping.ToDomainArchivedExpense(m)
	}
	return archived, nil
}

func scanArchivedExpense(row pgx.CollectableRow) (models.ArchivedExpense, error) {
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
}
