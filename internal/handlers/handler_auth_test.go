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
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	"github.com/qahwatech/cafe_backoffice_app/internal/core/domain"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
	"github.com/qahwatech/cafe_backoffice_app/internal/handlers"
	"github.com/qahwatech/cafe_backoffice_app/pkg/config"
)

// --- Mock OperatorService ---
type MockOperatorService struct {
	mock.Mock
}

func (m *MockOperatorService) Authenticate(ctx context.Context, username string, password string) (*domain.Operator, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorService) GetOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorService) CreateOperator(ctx context.Context, req dto.CreateOperatorRequest) (*domain.Operator, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.OperatorSvcFacade = (*MockOperatorService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockOperatorService *MockOperatorService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockOperatorService = new(MockOperatorService)

	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "cafe-backoffice-test",
		AllowedOrigins:    []string{"http://localhost:3000"},
	}
	services := &portssvc.ServiceContainer{
		Operator: suite.mockOperatorService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AuthHandlerTestSuite) postLogin(username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	operator := &domain.Operator{
		OperatorID: uuid.NewString(),
		Username:   "admin",
		Name:       "Administrator",
	}

	suite.mockOperatorService.On("Authenticate", mock.Anything, "admin", "changeme").
		Return(operator, nil).Once()

	w := suite.postLogin("admin", "changeme")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.Equal(operator.OperatorID, resp.OperatorID)
	suite.Equal(operator.Name, resp.Name)
	suite.mockOperatorService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials_Unauthorized() {
	suite.mockOperatorService.On("Authenticate", mock.Anything, "admin", "wrong").
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.postLogin("admin", "wrong")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid username or password")
	suite.mockOperatorService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields_BadRequest() {
	w := suite.postLogin("admin", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOperatorService.AssertNotCalled(suite.T(), "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_RateLimited_TooManyRequests() {
	// The per-IP limit allows 5 login attempts per minute; the sixth is rejected
	// before it reaches the service.
	suite.mockOperatorService.On("Authenticate", mock.Anything, "admin", "wrong").
		Return(nil, apperrors.ErrForbidden).Times(5)

	for i := 0; i < 5; i++ {
		w := suite.postLogin("admin", "wrong")
		suite.Equal(http.StatusUnauthorized, w.Code)
	}

	w := suite.postLogin("admin", "wrong")
	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.mockOperatorService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
