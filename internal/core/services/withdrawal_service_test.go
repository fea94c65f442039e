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
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
)

// --- Test Suite ---
type WithdrawalServiceTestSuite struct {
	suite.Suite
	mockWithdrawalRepo *MockWithdrawalRepository
	service            portssvc.WithdrawalSvcFacade
}

func (suite *WithdrawalServiceTestSuite) SetupTest() {
	suite.mockWithdrawalRepo = new(MockWithdrawalRepository)
	suite.service = services.NewWithdrawalService(suite.mockWithdrawalRepo)
}

// --- Test Cases ---

func (suite *WithdrawalServiceTestSuite) TestCreateWithdrawal_Success() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	req := dto.CreateWithdrawalRequest{
		EmployeeID:     uuid.NewString(),
		Amount:         decimal.NewFromInt(25),
		WithdrawalDate: "2024-03-15",
		Notes:          "advance",
	}

	suite.mockWithdrawalRepo.On("SaveWithdrawal", ctx, mock.MatchedBy(func(w domain.EmployeeWithdrawal) bool {
		return w.EmployeeID == req.EmployeeID && w.Amount.Equal(decimal.NewFromInt(25)) && w.CreatedBy == operatorID
	})).Return(nil).Once()

	withdrawal, err := suite.service.CreateWithdrawal(ctx, req, operatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(withdrawal)
	suite.Equal("advance", withdrawal.Notes)
	suite.mockWithdrawalRepo.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestCreateWithdrawal_NegativeAmount_Accepted() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	req := dto.CreateWithdrawalRequest{
		EmployeeID:     uuid.NewString(),
		Amount:         decimal.NewFromInt(-10),
		WithdrawalDate: "2024-03-15",
		Notes:          "correction of yesterday's entry",
	}

	suite.mockWithdrawalRepo.On("SaveWithdrawal", ctx, mock.MatchedBy(func(w domain.EmployeeWithdrawal) bool {
		return w.Amount.Equal(decimal.NewFromInt(-10))
	})).Return(nil).Once()

	withdrawal, err := suite.service.CreateWithdrawal(ctx, req, operatorID)

	// Sign is not enforced at this layer; a negative row is a manual correction.
	suite.Require().NoError(err)
	suite.True(withdrawal.Amount.Equal(decimal.NewFromInt(-10)))
	suite.mockWithdrawalRepo.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestCreateWithdrawal_InvalidDate_Validation() {
	ctx := context.Background()
	req := dto.CreateWithdrawalRequest{
		EmployeeID:     uuid.NewString(),
		Amount:         decimal.NewFromInt(10),
		WithdrawalDate: "15/03/2024",
	}

	withdrawal, err := suite.service.CreateWithdrawal(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(withdrawal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWithdrawalRepo.AssertNotCalled(suite.T(), "SaveWithdrawal", mock.Anything, mock.Anything)
}

func (suite *WithdrawalServiceTestSuite) TestUpdateWithdrawal_ZeroAmount_Accepted() {
	ctx := context.Background()
	withdrawalID := uuid.NewString()
	existing := &domain.EmployeeWithdrawal{
		WithdrawalID:   withdrawalID,
		EmployeeID:     uuid.NewString(),
		Amount:         decimal.NewFromInt(40),
		WithdrawalDate: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
	zero := decimal.Zero

	suite.mockWithdrawalRepo.On("FindWithdrawalByID", ctx, withdrawalID).Return(existing, nil).Once()
	suite.mockWithdrawalRepo.On("UpdateWithdrawal", ctx, mock.MatchedBy(func(w domain.EmployeeWithdrawal) bool {
		return w.WithdrawalID == withdrawalID && w.Amount.IsZero()
	})).Return(nil).Once()

	updated, err := suite.service.UpdateWithdrawal(ctx, withdrawalID, dto.UpdateWithdrawalRequest{Amount: &zero}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(updated.Amount.IsZero())
	suite.mockWithdrawalRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestWithdrawalService(t *testing.T) {
	suite.Run(t, new(WithdrawalServiceTestSuite))
}
