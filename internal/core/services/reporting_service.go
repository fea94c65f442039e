package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
	"github.com/qahwatech/cafe_backoffice_app/internal/middleware"
)

// reportingService builds expense reports that span closures: closed days are served
// from the archive, open days from the live table. Brand metadata is injected from
// configuration so exports carry the venue's name.
type reportingService struct {
	reportingRepo portsrepo.ReportingReader
	brandName     string
	brandNameAr   string
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingReader, brandName, brandNameAr string) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		brandName:     brandName,
		brandNameAr:   brandNameAr,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// BuildExpenseReport implements portssvc.ReportingSvcFacade.
func (s *reportingService) BuildExpenseReport(ctx context.Context, from, to time.Time) (*dto.ExpenseReportResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if to.Before(from) {
		return nil, fmt.Errorf("%w: report end precedes report start", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.AggregateExpenses(ctx, from, to)
	if err != nil {
		logger.Error("Failed to aggregate expenses for report", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to aggregate expenses: %w", err)
	}

	grandTotal := decimal.Zero
	reportRows := make([]dto.ExpenseReportRow, len(rows))
	for i, row := range rows {
		grandTotal = grandTotal.Add(row.Total)
		reportRows[i] = dto.ExpenseReportRow{
			Date:     dto.FormatDay(row.Date),
			Category: row.Category,
			Total:    row.Total,
			Count:    row.Count,
			Archived: row.Archived,
		}
	}

	logger.Debug("Expense report built",
		slog.String("from", dto.FormatDay(from)),
		slog.String("to", dto.FormatDay(to)),
		slog.Int("row_count", len(reportRows)),
		slog.String("grand_total", grandTotal.String()),
	)

	return &dto.ExpenseReportResponse{
		BrandName:   s.brandName,
		BrandNameAr: s.brandNameAr,
		From:        dto.FormatDay(from),
		To:          dto.FormatDay(to),
		GrandTotal:  grandTotal,
		Rows:        reportRows,
	}, nil
}

// ListArchivedExpensesInRange implements portssvc.ReportingSvcFacade.
func (s *reportingService) ListArchivedExpensesInRange(ctx context.Context, from, to time.Time) ([]domain.ArchivedExpense, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end precedes range start", apperrors.ErrValidation)
	}
	archived, err := s.reportingRepo.FindArchivedExpensesInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived expenses in range: %w", err)
	}
	return archived, nil
}
