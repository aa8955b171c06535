package api

import (
	"errors"
	"net/http"
	"strings"

	"fitcoach/fitness-platform/internal/domain"
	"fitcoach/fitness-platform/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for context keys
const (
	ContextTrainerKey   = "trainer"
	ContextRequestIDKey = "requestID"
)

// RequestIDMiddleware tags every request with an ID for log correlation,
// echoed back in the X-Request-ID response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// AuthMiddleware creates a Gin middleware that resolves the bearer token
// to the owning Trainer on every protected request. The full Trainer
// record is stored in the context; downstream handlers use it both as
// identity and as the ownership key for their queries.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		trainer, err := authService.ResolveTrainer(c.Request.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidTokenClaims):
				abortWithError(c, http.StatusUnauthorized, service.ErrInvalidTokenClaims.Error())
			case errors.Is(err, service.ErrTrainerNotFound):
				abortWithError(c, http.StatusUnauthorized, service.ErrTrainerNotFound.Error())
			default:
				abortWithError(c, http.StatusUnauthorized, service.ErrInvalidToken.Error())
			}
			return
		}

		c.Set(ContextTrainerKey, trainer)
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// getTrainerFromContext returns the Trainer resolved by AuthMiddleware.
func getTrainerFromContext(c *gin.Context) (*domain.Trainer, error) {
	raw, exists := c.Get(ContextTrainerKey)
	if !exists {
		return nil, errors.New("trainer not found in context")
	}
	trainer, ok := raw.(*domain.Trainer)
	if !ok {
		return nil, errors.New("invalid trainer type in context")
	}
	return trainer, nil
}
