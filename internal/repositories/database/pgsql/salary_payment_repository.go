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

type PgxSalaryPaymentRepository struct {
	BaseRepository
}

// newPgxSalaryPaymentRepository creates a new repository for salary payment data.
func newPgxSalaryPaymentRepository(pool *pgxpool.Pool) portsrepo.SalaryPaymentRepositoryFacade {
	return &PgxSalaryPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SalaryPaymentRepositoryFacade = (*PgxSalaryPaymentRepository)(nil)

const salaryPaymentColumns = `payment_id, employee_id, amount_paid, period_start, period_end, payment_date, notes, created_at, created_by`

// SavePayment inserts a new salary payment row.
func (r *PgxSalaryPaymentRepository) SavePayment(ctx context.Context, payment domain.SalaryPayment) error {
	modelP := mapping.ToModelSalaryPayment(payment)

	query := `
		INSERT INTO salary_payments (` + salaryPaymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelP.PaymentID,
		modelP.EmployeeID,
		modelP.AmountPaid,
		modelP.PeriodStart,
		modelP.PeriodEnd,
		modelP.PaymentDate,
		modelP.Notes,
		modelP.CreatedAt,
		modelP.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save salary payment %s: %w", modelP.PaymentID, err)
	}
	return nil
}

// FindPaymentsInRange retrieves an employee's salary payments with payment_date in [start, end).
func (r *PgxSalaryPaymentRepository) FindPaymentsInRange(ctx context.Context, employeeID string, start, end time.Time) ([]domain.SalaryPayment, error) {
	query := `
		SELECT ` + salaryPaymentColumns + `
		FROM salary_payments
		WHERE employee_id = $1 AND payment_date >= $2 AND payment_date < $3
		ORDER BY payment_date;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary payments: %w", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SalaryPayment, error) {
		var p models.SalaryPayment
		err := row.Scan(
			&p.PaymentID,
			&p.EmployeeID,
			&p.AmountPaid,
			&p.PeriodStart,
			&p.PeriodEnd,
			&p.PaymentDate,
			&p.Notes,
			&p.CreatedAt,
			&p.CreatedBy,
		)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan salary payments: %w", err)
	}

	payments := make([]domain.SalaryPayment, len(modelPayments))
	for i, m := range modelPayments {
		payments[i] = mapping.ToDomainSalaryPayment(m)
	}
	return payments, nil
}
