package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/qahwatech/cafe_backoffice_app/internal/apperrors"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/internal/dto"
	"github.com/qahwatech/cafe_backoffice_app/internal/middleware"
	"github.com/qahwatech/cafe_backoffice_app/internal/utils"
	"github.com/qahwatech/cafe_backoffice_app/pkg/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	operatorService portssvc.OperatorSvcFacade
	jwtSecret       string
	jwtDuration     time.Duration
	jwtIssuer       string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(os portssvc.OperatorSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		operatorService: os,
		jwtSecret:       cfg.JWTSecret,
		jwtDuration:     cfg.JWTExpiryDuration,
		jwtIssuer:       cfg.JWTIssuer,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication. Login is the only route
// reachable without a token, so it carries a per-IP rate limit against brute forcing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, operatorService portssvc.OperatorSvcFacade) {
	h := NewAuthHandler(operatorService, cfg)

	// Rate limit: 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
	}
}

// Login authenticates an operator and returns a signed JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	operator, err := h.operatorService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			return
		}
		logger.Error("Failed to authenticate operator", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	token, err := utils.GenerateJWT(operator.OperatorID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:      token,
		OperatorID: operator.OperatorID,
		Name:       operator.Name,
	})
}
