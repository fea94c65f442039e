package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
	"github.com/qahwatech/cafe_backoffice_app/internal/models"
	"github.com/qahwatech/cafe_backoffice_app/internal/utils/mapping"
)

type PgxOperatorRepository struct {
	BaseRepository
}

// newPgxOperatorRepository creates a new repository for operator data.
func newPgxOperatorRepository(pool *pgxpool.Pool) portsrepo.OperatorRepositoryFacade {
	return &PgxOperatorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OperatorRepositoryFacade = (*PgxOperatorRepository)(nil)

const operatorColumns = `operator_id, username, password_hash, name, created_at, deleted_at`

func scanOperator(row pgx.Row) (models.Operator, error) {
	var o models.Operator
	err := row.Scan(
		&o.OperatorID,
		&o.Username,
		&o.PasswordHash,
		&o.Name,
		&o.CreatedAt,
		&o.DeletedAt,
	)
	return o, err
}

// SaveOperator inserts a new operator.
func (r *PgxOperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	modelOp := mapping.ToModelOperator(operator)

	query := `
		INSERT INTO operators (` + operatorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelOp.OperatorID,
		modelOp.Username,
		modelOp.PasswordHash,
		modelOp.Name,
		modelOp.CreatedAt,
		modelOp.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, modelOp.Username)
		}
		return fmt.Errorf("failed to save operator %s: %w", modelOp.OperatorID, err)
	}
	return nil
}

// FindOperatorByID retrieves an operator by id, excluding soft-deleted rows.
func (r *PgxOperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE operator_id = $1 AND deleted_at IS NULL;`

	modelOp, err := scanOperator(r.Pool.QueryRow(ctx, query, operatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator by id %s: %w", operatorID, err)
	}

	domainOp := mapping.ToDomainOperator(modelOp)
	return &domainOp, nil
}

// FindOperatorByUsername retrieves an operator by username, excluding soft-deleted rows.
func (r *PgxOperatorRepository) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE username = $1 AND deleted_at IS NULL;`

	modelOp, err := scanOperator(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator by username: %w", err)
	}

	domainOp := mapping.ToDomainOperator(modelOp)
	return &domainOp, nil
}
