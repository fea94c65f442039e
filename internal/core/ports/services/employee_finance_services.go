package services

import (
	"context"
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
)

// EmployeeFinanceSvcFacade computes derived employee balances.
type EmployeeFinanceSvcFacade interface {
	// ComputeBalance derives the employee's balance for the month containing the given
	// time. The result is never cached; every call re-reads the three source tables.
	ComputeBalance(ctx context.Context, employeeID string, month time.Time) (*domain.EmployeeBalance, error)
}
