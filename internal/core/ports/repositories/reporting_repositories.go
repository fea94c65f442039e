package repositories

import (
	"context"
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseReportRow is one aggregated per-day, per-category line of the expense report.
type ExpenseReportRow struct {
	Date     time.Time
	Category string
	Total    decimal.Decimal
	Count    int
	Archived bool
}

// ReportingReader defines read operations spanning live and archived expense data.
type ReportingReader interface {
	// AggregateExpenses aggregates both live and archived expenses per day and category
	// for dates in [from, to]. Closed days contribute only archived rows by the closure
	// invariant, so no date is double counted.
	AggregateExpenses(ctx context.Context, from, to time.Time) ([]ExpenseReportRow, error)

	// FindArchivedExpensesInRange lists raw archived rows for closure-spanning reports.
	FindArchivedExpensesInRange(ctx context.Context, from, to time.Time) ([]domain.ArchivedExpense, error)
}
