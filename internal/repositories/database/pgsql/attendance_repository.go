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

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates a new repository for attendance data.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

const attendanceColumns = `attendance_id, employee_id, work_date, daily_wage_earned, bonus_amount, deduction_amount, created_at, created_by`

// SaveAttendance inserts a new attendance row.
func (r *PgxAttendanceRepository) SaveAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	modelR := mapping.ToModelAttendance(record)

	query := `
		INSERT INTO attendance_records (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelR.AttendanceID,
		modelR.EmployeeID,
		modelR.WorkDate,
		modelR.DailyWageEarned,
		modelR.BonusAmount,
		modelR.DeductionAmount,
		modelR.CreatedAt,
		modelR.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save attendance record %s: %w", modelR.AttendanceID, err)
	}
	return nil
}

// FindAttendanceInRange retrieves an employee's attendance rows with work_date in [start, end).
func (r *PgxAttendanceRepository) FindAttendanceInRange(ctx context.Context, employeeID string, start, end time.Time) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND work_date >= $2 AND work_date < $3
		ORDER BY work_date;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AttendanceRecord, error) {
		var rec models.AttendanceRecord
		err := row.Scan(
			&rec.AttendanceID,
			&rec.EmployeeID,
			&rec.WorkDate,
			&rec.DailyWageEarned,
			&rec.BonusAmount,
			&rec.DeductionAmount,
			&rec.CreatedAt,
			&rec.CreatedBy,
		)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendance records: %w", err)
	}

	records := make([]domain.AttendanceRecord, len(modelRecords))
	for i, m := range modelRecords {
		records[i] = mapping.ToDomainAttendance(m)
	}
	return records, nil
}
