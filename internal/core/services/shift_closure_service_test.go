package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpensesByDate(ctx context.Context, date time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpensesByDate(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseRepository) DeleteExpensesByIDs(ctx context.Context, expenseIDs []string) (int64, error) {
	args := m.Called(ctx, expenseIDs)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ShiftClosureRepository ---
type MockShiftClosureRepository struct {
	mock.Mock
}

func (m *MockShiftClosureRepository) FindClosureByID(ctx context.Context, closureID string) (*domain.ShiftClosure, error) {
	args := m.Called(ctx, closureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftClosure), args.Error(1)
}

func (m *MockShiftClosureRepository) ListClosures(ctx context.Context, limit int, offset int) ([]domain.ShiftClosure, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftClosure), args.Error(1)
}

func (m *MockShiftClosureRepository) SaveClosure(ctx context.Context, closure domain.ShiftClosure) error {
	args := m.Called(ctx, closure)
	return args.Error(0)
}

func (m *MockShiftClosureRepository) ArchiveExpenses(ctx context.Context, closureID string, archivedAt time.Time, expenses []domain.Expense) error {
	args := m.Called(ctx, closureID, archivedAt, expenses)
	return args.Error(0)
}

func (m *MockShiftClosureRepository) FindArchivedExpensesByClosure(ctx context.Context, closureID string) ([]domain.ArchivedExpense, error) {
	args := m.Called(ctx, closureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchivedExpense), args.Error(1)
}

// --- Test Suite ---
type ShiftClosureServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockClosureRepo *MockShiftClosureRepository
	service         portssvc.ShiftClosureSvcFacade
}

func (suite *ShiftClosureServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockClosureRepo = new(MockShiftClosureRepository)
	suite.service = services.NewShiftClosureService(suite.mockClosureRepo, suite.mockExpenseRepo)
}

func baseCloseShiftRequest() dto.CloseShiftRequest {
	return dto.CloseShiftRequest{
		ShiftType:     "morning",
		ShiftDate:     "2024-03-15",
		CoinsSmall:    decimal.NewFromInt(50),
		CoinsOneDinar: decimal.NewFromInt(200),
		BillsLarge:    decimal.NewFromInt(300),
		CashSales:     decimal.NewFromInt(400),
		CardSales:     decimal.NewFromInt(300),
		TadawulSales:  decimal.NewFromInt(200),
		PrestoSales:   decimal.NewFromInt(175),
		ScreenSales:   decimal.NewFromInt(1075),
	}
}

func testDay(suite *ShiftClosureServiceTestSuite, day string) time.Time {
	d, err := dto.ParseDay(day)
	suite.Require().NoError(err)
	return d
}

// --- Test Cases ---

func (suite *ShiftClosureServiceTestSuite) TestCloseShift_Success() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	req := baseCloseShiftRequest()
	shiftDate := testDay(suite, req.ShiftDate)

	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(30), ExpenseDate: shiftDate},
		{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(70), ExpenseDate: shiftDate},
	}

	suite.mockExpenseRepo.On("FindExpensesByDate", ctx, shiftDate).Return(expenses, nil).Once()
	suite.mockClosureRepo.On("SaveClosure", ctx, mock.MatchedBy(func(c domain.ShiftClosure) bool {
		// counted 550 + sales 1075 + expenses 100 - carry 0 = 1725; diff = 1725 - 1075 = 650
		return c.ShiftType == domain.ShiftMorning &&
			c.ShiftDate.Equal(shiftDate) &&
			c.ShiftExpenses.Equal(decimal.NewFromInt(100)) &&
			c.TotalActual.Equal(decimal.NewFromInt(550)) &&
			c.TotalCalculated.Equal(decimal.NewFromInt(1725)) &&
			c.Difference.Equal(decimal.NewFromInt(650)) &&
			c.CreatedBy == operatorID
	})).Return(nil).Once()
	suite.mockClosureRepo.On("ArchiveExpenses", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time"), expenses).Return(nil).Once()
	suite.mockExpenseRepo.On("DeleteExpensesByDate", ctx, shiftDate).Return(int64(2), nil).Once()

	closure, err := suite.service.CloseShift(ctx, req, operatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(closure)
	suite.NotEmpty(closure.ClosureID)
	suite.True(closure.Difference.Equal(decimal.NewFromInt(650)))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockClosureRepo.AssertExpectations(suite.T())
}

func (suite *ShiftClosureServiceTestSuite) TestCloseShift_NoExpenses_SkipsArchiveAndPurge() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	req := baseCloseShiftRequest()
	shiftDate := testDay(suite, req.ShiftDate)

	suite.mockExpenseRepo.On("FindExpensesByDate", ctx, shiftDate).Return([]domain.Expense{}, nil).Once()
	suite.mockClosureRepo.On("SaveClosure", ctx, mock.MatchedBy(func(c domain.ShiftClosure) bool {
		return c.ShiftExpenses.IsZero()
	})).Return(nil).Once()

	closure, err := suite.service.CloseShift(ctx, req, operatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(closure)
	suite.mockClosureRepo.AssertNotCalled(suite.T(), "ArchiveExpenses", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpensesByDate", mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpensesByIDs", mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockClosureRepo.AssertExpectations(suite.T())
}

func (suite *ShiftClosureServiceTestSuite) TestCloseShift_ExpenseReadError_AbortsEverything() {
	ctx := context.Background()
	req := baseCloseShiftRequest()
	shiftDate := testDay(suite, req.ShiftDate)
	expectedErr := assert.AnError

	suite.mockExpenseRepo.On("FindExpensesByDate", ctx, shiftDate).Return(nil, expectedErr).Once()

	closure, err := suite.service.CloseShift(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(closure)
	suite.ErrorIs(err, expectedErr)
	suite.mockClosureRepo.AssertNotCalled(suite.T(), "SaveClosure", mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ShiftClosureServiceTestSuite) TestCloseShift_SaveError_NoArchiveNoPurge() {
	ctx := context.Background()
	req := baseCloseShiftRequest()
	shiftDate := testDay(suite, req.ShiftDate)
	expenses := []domain.Expense{{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(10)}}
	expectedErr := assert.AnError

	suite.mockExpenseRepo.On("FindExpensesByDate", ctx, shiftDate).Return(expenses, nil).Once()
	suite.mockClosureRepo.On("SaveClosure", ctx, mock.AnythingOfType("domain.ShiftClosure")).Return(expectedErr).Once()

	closure, err := suite.service.CloseShift(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(closure)
	suite.ErrorIs(err, expectedErr)
	suite.mockClosureRepo.AssertNotCalled(suite.T(), "ArchiveExpenses", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpensesByDate", mock.Anything, mock.Anything)
	suite.mockClosureRepo.AssertExpectations(suite.T())
}

func (suite *ShiftClosureServiceTestSuite) TestCloseShift_DuplicateClosure_Rejected() {
	ctx := context.Background()
	req := baseCloseShiftRequest()
	shiftDate := testDay(suite, req.ShiftDate)

	suite.mockExpenseRepo.On("FindExpensesByDate", ctx, shiftDate).Return([]domain.Expense{}, nil).Once()
	suite.mockClosureRepo.On("SaveClosure", ctx, mock.AnythingOfType("domain.ShiftClosure")).Return(apperrors.ErrDuplicate).Once()

	closure, err := suite.service.CloseShift(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(closure)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockClosureRepo.AssertExpectations(suite.T())
}

func (suite *ShiftClosureServiceTestSuite) TestCloseShift_ArchiveFailure_IsSwallowed() {
	ctx := context.Background()
	req := baseCloseShiftRequest()
	shiftDate := testDay(suite, req.ShiftDate)
	expenses := []domain.Expense{{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(25)}}

	suite.mockExpenseRepo.On("FindExpensesByDate", ctx, shiftDate).Return(expenses, nil).Once()
	suite.mockClosureRepo.On("SaveClosure", ctx, mock.AnythingOfType("domain.ShiftClosure")).Return(nil).Once()
	suite.mockClosureRepo.On("ArchiveExpenses", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time"), expenses).Return(assert.AnError).Once()
	suite.mockExpenseRepo.On("DeleteExpensesByDate", ctx, shiftDate).Return(int64(1), nil).Once()

	closure, err := suite.service.CloseShift(ctx, req, uuid.NewString())

	// Archive failure is logged and swallowed; the closure still succeeds.
	suite.Require().NoError(err)
	suite.Require().NotNil(closure)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockClosureRepo.AssertExpectations(suite.T())
}

func (suite *ShiftClosureServiceTestSuite) TestCloseShift_PurgeFallbackByIDs_Succeeds() {
	ctx := context.Background()
	req := baseCloseShiftRequest()
	shiftDate := testDay(suite, req.ShiftDate)
	expenses := []domain.Expense{
		{ExpenseID: "exp-1", Amount: decimal.NewFromInt(15)},
		{ExpenseID: "exp-2", Amount: decimal.NewFromInt(35)},
	}

	suite.mockExpenseRepo.On("FindExpensesByDate", ctx, shiftDate).Return(expenses, nil).Once()
	suite.mockClosureRepo.On("SaveClosure", ctx, mock.AnythingOfType("domain.ShiftClosure")).Return(nil).Once()
	suite.mockClosureRepo.On("ArchiveExpenses", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time"), expenses).Return(nil).Once()
	suite.mockExpenseRepo.On("DeleteExpensesByDate", ctx, shiftDate).Return(int64(0), assert.AnError).Once()
	suite.mockExpenseRepo.On("DeleteExpensesByIDs", ctx, []string{"exp-1", "exp-2"}).Return(int64(2), nil).Once()

	closure, err := suite.service.CloseShift(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(closure)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockClosureRepo.AssertExpectations(suite.T())
}

func (suite *ShiftClosureServiceTestSuite) TestCloseShift_BothPurgeStrategiesFail() {
	ctx := context.Background()
	req := baseCloseShiftRequest()
	shiftDate := testDay(suite, req.ShiftDate)
	expenses := []domain.Expense{{ExpenseID: "exp-1", Amount: decimal.NewFromInt(40)}}

	suite.mockExpenseRepo.On("FindExpensesByDate", ctx, shiftDate).Return(expenses, nil).Once()
	suite.mockClosureRepo.On("SaveClosure", ctx, mock.AnythingOfType("domain.ShiftClosure")).Return(nil).Once()
	suite.mockClosureRepo.On("ArchiveExpenses", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time"), expenses).Return(nil).Once()
	suite.mockExpenseRepo.On("DeleteExpensesByDate", ctx, shiftDate).Return(int64(0), assert.AnError).Once()
	suite.mockExpenseRepo.On("DeleteExpensesByIDs", ctx, []string{"exp-1"}).Return(int64(0), assert.AnError).Once()

	closure, err := suite.service.CloseShift(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(closure)
	suite.ErrorIs(err, apperrors.ErrPurgeFailed)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockClosureRepo.AssertExpectations(suite.T())
}

func (suite *ShiftClosureServiceTestSuite) TestCloseShift_FallbackDeletesNothing_HardFailure() {
	ctx := context.Background()
	req := baseCloseShiftRequest()
	shiftDate := testDay(suite, req.ShiftDate)
	expenses := []domain.Expense{{ExpenseID: "exp-1", Amount: decimal.NewFromInt(40)}}

	suite.mockExpenseRepo.On("FindExpensesByDate", ctx, shiftDate).Return(expenses, nil).Once()
	suite.mockClosureRepo.On("SaveClosure", ctx, mock.AnythingOfType("domain.ShiftClosure")).Return(nil).Once()
	suite.mockClosureRepo.On("ArchiveExpenses", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time"), expenses).Return(nil).Once()
	suite.mockExpenseRepo.On("DeleteExpensesByDate", ctx, shiftDate).Return(int64(0), assert.AnError).Once()
	suite.mockExpenseRepo.On("DeleteExpensesByIDs", ctx, []string{"exp-1"}).Return(int64(0), nil).Once()

	closure, err := suite.service.CloseShift(ctx, req, uuid.NewString())

	// Zero deletions for a non-empty snapshot is indistinguishable from a lost purge.
	suite.Require().Error(err)
	suite.Nil(closure)
	suite.ErrorIs(err, apperrors.ErrPurgeFailed)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ShiftClosureServiceTestSuite) TestCloseShift_InvalidDate_Validation() {
	ctx := context.Background()
	req := baseCloseShiftRequest()
	req.ShiftDate = "15/03/2024"

	closure, err := suite.service.CloseShift(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(closure)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "FindExpensesByDate", mock.Anything, mock.Anything)
}

func (suite *ShiftClosureServiceTestSuite) TestGetClosureByID_NotFound() {
	ctx := context.Background()
	closureID := uuid.NewString()

	suite.mockClosureRepo.On("FindClosureByID", ctx, closureID).Return(nil, apperrors.ErrNotFound).Once()

	closure, err := suite.service.GetClosureByID(ctx, closureID)

	suite.Require().Error(err)
	suite.Nil(closure)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockClosureRepo.AssertExpectations(suite.T())
}

func (suite *ShiftClosureServiceTestSuite) TestListClosures_DefaultLimit() {
	ctx := context.Background()
	expected := []domain.ShiftClosure{{ClosureID: uuid.NewString()}}

	suite.mockClosureRepo.On("ListClosures", ctx, 20, 0).Return(expected, nil).Once()

	closures, err := suite.service.ListClosures(ctx, 0, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, closures)
	suite.mockClosureRepo.AssertExpectations(suite.T())
}

func (suite *ShiftClosureServiceTestSuite) TestListArchivedExpenses_Success() {
	ctx := context.Background()
	closureID := uuid.NewString()
	expected := []domain.ArchivedExpense{{ArchivedExpenseID: uuid.NewString(), ClosureID: closureID}}

	suite.mockClosureRepo.On("FindArchivedExpensesByClosure", ctx, closureID).Return(expected, nil).Once()

	archived, err := suite.service.ListArchivedExpenses(ctx, closureID)

	suite.Require().NoError(err)
	suite.Equal(expected, archived)
	suite.mockClosureRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestShiftClosureService(t *testing.T) {
	suite.Run(t, new(ShiftClosureServiceTestSuite))
}
