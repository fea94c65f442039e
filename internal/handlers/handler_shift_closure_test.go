package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
	"github.com/qahwatech/cafe_backoffice_app/internal/handlers"
	"github.com/qahwatech/cafe_backoffice_app/pkg/config"
)

// --- Mock ShiftClosureService ---
type MockShiftClosureService struct {
	mock.Mock
}

func (m *MockShiftClosureService) CloseShift(ctx context.Context, req dto.CloseShiftRequest, operatorID string) (*domain.ShiftClosure, error) {
	args := m.Called(ctx, req, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftClosure), args.Error(1)
}

func (m *MockShiftClosureService) GetClosureByID(ctx context.Context, closureID string) (*domain.ShiftClosure, error) {
	args := m.Called(ctx, closureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftClosure), args.Error(1)
}

func (m *MockShiftClosureService) ListClosures(ctx context.Context, limit int, offset int) ([]domain.ShiftClosure, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftClosure), args.Error(1)
}

func (m *MockShiftClosureService) ListArchivedExpenses(ctx context.Context, closureID string) ([]domain.ArchivedExpense, error) {
	args := m.Called(ctx, closureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchivedExpense), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ShiftClosureSvcFacade = (*MockShiftClosureService)(nil)

// --- Test Suite ---
type ShiftClosureHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockClosureService *MockShiftClosureService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ShiftClosureHandlerTestSuite) generateTestToken(operatorID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cafe-backoffice-test",
		Subject:   operatorID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ShiftClosureHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockClosureService = new(MockShiftClosureService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "cafe-backoffice-test",
		AllowedOrigins:    []string{"http://localhost:3000"},
	}
	// Only the closure service is exercised here; the other facades stay nil.
	services := &portssvc.ServiceContainer{
		ShiftClosure: suite.mockClosureService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *ShiftClosureHandlerTestSuite) postCloseShift(body []byte, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/shift-closures", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validCloseShiftBody() map[string]interface{} {
	return map[string]interface{}{
		"shiftType":     "morning",
		"shiftDate":     "2024-03-15",
		"coinsSmall":    "50",
		"coinsOneDinar": "200",
		"billsLarge":    "300",
		"cashSales":     "400",
		"cardSales":     "300",
		"tadawulSales":  "200",
		"prestoSales":   "175",
		"screenSales":   "1075",
	}
}

// --- Test Cases ---

func (suite *ShiftClosureHandlerTestSuite) TestCloseShift_Success() {
	operatorID := uuid.NewString()
	expected := &domain.ShiftClosure{
		ClosureID:   uuid.NewString(),
		ShiftType:   domain.ShiftMorning,
		ShiftDate:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		ScreenSales: decimal.NewFromInt(1075),
		Difference:  decimal.NewFromInt(650),
		CreatedBy:   operatorID,
	}

	suite.mockClosureService.On("CloseShift",
		mock.Anything,
		mock.MatchedBy(func(req dto.CloseShiftRequest) bool {
			return req.ShiftType == "morning" && req.ShiftDate == "2024-03-15" &&
				req.ScreenSales.Equal(decimal.NewFromInt(1075))
		}),
		operatorID,
	).Return(expected, nil).Once()

	body, _ := json.Marshal(validCloseShiftBody())
	w := suite.postCloseShift(body, suite.generateTestToken(operatorID))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ShiftClosureResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ClosureID, resp.ClosureID)
	suite.Equal("morning", resp.ShiftType)
	suite.Equal("2024-03-15", resp.ShiftDate)
	suite.True(resp.Difference.Equal(decimal.NewFromInt(650)))

	suite.mockClosureService.AssertExpectations(suite.T())
}

func (suite *ShiftClosureHandlerTestSuite) TestCloseShift_Duplicate_Conflict() {
	operatorID := uuid.NewString()

	suite.mockClosureService.On("CloseShift", mock.Anything, mock.AnythingOfType("dto.CloseShiftRequest"), operatorID).
		Return(nil, apperrors.ErrDuplicate).Once()

	body, _ := json.Marshal(validCloseShiftBody())
	w := suite.postCloseShift(body, suite.generateTestToken(operatorID))

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockClosureService.AssertExpectations(suite.T())
}

func (suite *ShiftClosureHandlerTestSuite) TestCloseShift_PurgeFailed_InternalError() {
	operatorID := uuid.NewString()

	suite.mockClosureService.On("CloseShift", mock.Anything, mock.AnythingOfType("dto.CloseShiftRequest"), operatorID).
		Return(nil, apperrors.ErrPurgeFailed).Once()

	body, _ := json.Marshal(validCloseShiftBody())
	w := suite.postCloseShift(body, suite.generateTestToken(operatorID))

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "purge")
	suite.mockClosureService.AssertExpectations(suite.T())
}

func (suite *ShiftClosureHandlerTestSuite) TestCloseShift_InvalidShiftType_BadRequest() {
	body := validCloseShiftBody()
	body["shiftType"] = "night"
	raw, _ := json.Marshal(body)

	w := suite.postCloseShift(raw, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClosureService.AssertNotCalled(suite.T(), "CloseShift", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShiftClosureHandlerTestSuite) TestCloseShift_MissingToken_Unauthorized() {
	body, _ := json.Marshal(validCloseShiftBody())
	w := suite.postCloseShift(body, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockClosureService.AssertNotCalled(suite.T(), "CloseShift", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShiftClosureHandlerTestSuite) TestGetClosureByID_NotFound() {
	closureID := uuid.NewString()

	suite.mockClosureService.On("GetClosureByID", mock.Anything, closureID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/shift-closures/"+closureID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockClosureService.AssertExpectations(suite.T())
}

func (suite *ShiftClosureHandlerTestSuite) TestListClosures_Success() {
	expected := []domain.ShiftClosure{
		{ClosureID: uuid.NewString(), ShiftType: domain.ShiftEvening},
	}

	suite.mockClosureService.On("ListClosures", mock.Anything, 20, 0).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/shift-closures", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ShiftClosureResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal(expected[0].ClosureID, resp[0].ClosureID)
	suite.mockClosureService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestShiftClosureHandler(t *testing.T) {
	suite.Run(t, new(ShiftClosureHandlerTestSuite))
}
