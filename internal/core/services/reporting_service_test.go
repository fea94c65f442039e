package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) AggregateExpenses(ctx context.Context, from, to time.Time) ([]portsrepo.ExpenseReportRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.ExpenseReportRow), args.Error(1)
}

func (m *MockReportingRepository) FindArchivedExpensesInRange(ctx context.Context, from, to time.Time) ([]domain.ArchivedExpense, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchivedExpense), args.Error(1)
}

// Ensure mock implements the interface
var _ portsrepo.ReportingReader = (*MockReportingRepository)(nil)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, "Test Cafe", "مقهى الاختبار")
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestBuildExpenseReport_Success() {
	ctx := context.Background()
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	repoRows := []portsrepo.ExpenseReportRow{
		{Date: from, Category: "supplies", Total: decimal.NewFromInt(60), Count: 2, Archived: true},
		{Date: to, Category: "maintenance", Total: decimal.NewFromInt(40), Count: 1, Archived: false},
	}

	suite.mockReportingRepo.On("AggregateExpenses", ctx, from, to).Return(repoRows, nil).Once()

	report, err := suite.service.BuildExpenseReport(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal("Test Cafe", report.BrandName)
	suite.Equal("مقهى الاختبار", report.BrandNameAr)
	suite.Equal("2024-03-01", report.From)
	suite.Equal("2024-03-31", report.To)
	suite.True(report.GrandTotal.Equal(decimal.NewFromInt(100)))
	suite.Require().Len(report.Rows, 2)
	suite.Equal("2024-03-01", report.Rows[0].Date)
	suite.Equal("supplies", report.Rows[0].Category)
	suite.True(report.Rows[0].Archived)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBuildExpenseReport_InvalidRange() {
	ctx := context.Background()
	from := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.BuildExpenseReport(ctx, from, to)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "AggregateExpenses", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestListArchivedExpensesInRange_Success() {
	ctx := context.Background()
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	archived := []domain.ArchivedExpense{
		{
			ArchivedExpenseID: uuid.NewString(),
			ClosureID:         uuid.NewString(),
			Title:             "Milk delivery",
			Amount:            decimal.NewFromInt(30),
			Category:          "supplies",
			ExpenseDate:       from,
		},
	}

	suite.mockReportingRepo.On("FindArchivedExpensesInRange", ctx, from, to).Return(archived, nil).Once()

	got, err := suite.service.ListArchivedExpensesInRange(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal(archived[0].ArchivedExpenseID, got[0].ArchivedExpenseID)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestListArchivedExpensesInRange_InvalidRange() {
	ctx := context.Background()
	from := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	got, err := suite.service.ListArchivedExpensesInRange(ctx, from, to)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "FindArchivedExpensesInRange", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
