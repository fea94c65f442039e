package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/qahwatech/cafe_backoffice_app/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT bearer tokens
// and stamps the authenticated operator id into the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		tokenString := parts[1]

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		operatorID := claims.Subject
		if operatorID == "" {
			logger.Error("Operator ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		ctxWithOperator := context.WithValue(c.Request.Context(), operatorIDKey, operatorID)

		// Enrich the request logger with the operator identity
		enrichedLogger := logger.With(slog.String("operator_id", operatorID))
		ctxWithLoggerAndOperator := context.WithValue(ctxWithOperator, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndOperator)

		c.Next()
	}
}
