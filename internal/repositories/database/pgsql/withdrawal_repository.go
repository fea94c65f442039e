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

type PgxWithdrawalRepository struct {
	BaseRepository
}

// newPgxWithdrawalRepository creates a new repository for withdrawal data.
func newPgxWithdrawalRepository(pool *pgxpool.Pool) portsrepo.WithdrawalRepositoryFacade {
	return &PgxWithdrawalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.WithdrawalRepositoryFacade = (*PgxWithdrawalRepository)(nil)

const withdrawalColumns = `withdrawal_id, employee_id, amount, withdrawal_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanWithdrawal(row pgx.Row) (models.EmployeeWithdrawal, error) {
	var w models.EmployeeWithdrawal
	err := row.Scan(
		&w.WithdrawalID,
		&w.EmployeeID,
		&w.Amount,
		&w.WithdrawalDate,
		&w.Notes,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
	)
	return w, err
}

// SaveWithdrawal inserts a new withdrawal row.
func (r *PgxWithdrawalRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.EmployeeWithdrawal) error {
	modelW := mapping.ToModelWithdrawal(withdrawal)

	query := `
		INSERT INTO employee_withdrawals (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelW.WithdrawalID,
		modelW.EmployeeID,
		modelW.Amount,
		modelW.WithdrawalDate,
		modelW.Notes,
		modelW.CreatedAt,
		modelW.CreatedBy,
		modelW.LastUpdatedAt,
		modelW.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save withdrawal %s: %w", modelW.WithdrawalID, err)
	}
	return nil
}

// UpdateWithdrawal updates an existing withdrawal row.
func (r *PgxWithdrawalRepository) UpdateWithdrawal(ctx context.Context, withdrawal domain.EmployeeWithdrawal) error {
	modelW := mapping.ToModelWithdrawal(withdrawal)

	query := `
		UPDATE employee_withdrawals
		SET amount = $2, withdrawal_date = $3, notes = $4, last_updated_at = $5, last_updated_by = $6
		WHERE withdrawal_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelW.WithdrawalID,
		modelW.Amount,
		modelW.WithdrawalDate,
		modelW.Notes,
		modelW.LastUpdatedAt,
		modelW.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update withdrawal %s: %w", modelW.WithdrawalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteWithdrawal removes a withdrawal row.
func (r *PgxWithdrawalRepository) DeleteWithdrawal(ctx context.Context, withdrawalID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM employee_withdrawals WHERE withdrawal_id = $1;`, withdrawalID)
	if err != nil {
		return fmt.Errorf("failed to delete withdrawal %s: %w", withdrawalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindWithdrawalByID retrieves a withdrawal by its id.
func (r *PgxWithdrawalRepository) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.EmployeeWithdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM employee_withdrawals WHERE withdrawal_id = $1;`

	modelW, err := scanWithdrawal(r.Pool.QueryRow(ctx, query, withdrawalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find withdrawal by id %s: %w", withdrawalID, err)
	}

	domainW := mapping.ToDomainWithdrawal(modelW)
	return &domainW, nil
}

// FindWithdrawalsInRange retrieves an employee's withdrawals with withdrawal_date in [start, end).
func (r *PgxWithdrawalRepository) FindWithdrawalsInRange(ctx context.Context, employeeID string, start, end time.Time) ([]domain.EmployeeWithdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM employee_withdrawals
		WHERE employee_id = $1 AND withdrawal_date >= $2 AND withdrawal_date < $3
		ORDER BY withdrawal_date;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals: %w", err)
	}
	defer rows.Close()

	modelWithdrawals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.EmployeeWithdrawal, error) {
		return scanWithdrawal(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan withdrawals: %w", err)
	}

	withdrawals := make([]domain.EmployeeWithdrawal, len(modelWithdrawals))
	for i, m := range modelWithdrawals {
		withdrawals[i] = mapping.ToDomainWithdrawal(m)
	}
	return withdrawals, nil
}
