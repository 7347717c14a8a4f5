package auth

import (
	"github.com/gin-gonic/gin"
)

// TokenService handles JWT operations
type TokenService interface {
	GenerateAccessToken(user *User) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// ResponseHandler interface for HTTP responses
type ResponseHandler interface {
	UnauthorizedResponse(c *gin.Context, message string)
	ForbiddenResponse(c *gin.Context, message string)
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogDebug(message string, fields map[string]interface{})
}
