package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExpenseRepo:       newPgxExpenseRepository(dbPool),
		ShiftClosureRepo:  newPgxShiftClosureRepository(dbPool),
		AttendanceRepo:    newPgxAttendanceRepository(dbPool),
		WithdrawalRepo:    newPgxWithdrawalRepository(dbPool),
		SalaryPaymentRepo: newPgxSalaryPaymentRepository(dbPool),
		OperatorRepo:      newPgxOperatorRepository(dbPool),
		ReportingRepo:     newPgxReportingRepository(dbPool),
	}
}
