package services

import (
	"context"
	"time"

	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
)

// ReportingSvcFacade builds closure-spanning expense reports over live and archived rows.
type ReportingSvcFacade interface {
	// BuildExpenseReport aggregates expenses per day and category for [from, to],
	// unioning live and archived sources without double counting closed dates.
	BuildExpenseReport(ctx context.Context, from, to time.Time) (*dto.ExpenseReportResponse, error)

	// ListArchivedExpensesInRange lists the raw archived rows with expense_date in
	// [from, to], across closures.
	ListArchivedExpensesInRange(ctx context.Context, from, to time.Time) ([]domain.ArchivedExpense, error)
}
