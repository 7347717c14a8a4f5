package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Middleware creates a middleware that requires a valid access token
func Middleware(tokens TokenService, responseHandler ResponseHandler, logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responseHandler.UnauthorizedResponse(c, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			responseHandler.UnauthorizedResponse(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			logger.LogDebug("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			responseHandler.UnauthorizedResponse(c, "Invalid token")
			c.Abort()
			return
		}

		identity, err := IdentityFromClaims(claims)
		if err != nil {
			responseHandler.UnauthorizedResponse(c, "Invalid token claims")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Set("userID", identity.UserID.String())
		c.Set("email", identity.Email)

		c.Next()
	}
}

// RequireUploadCapability rejects identities that are not allowed to publish
func RequireUploadCapability(responseHandler ResponseHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			responseHandler.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}

		if !identity.CanUpload() {
			responseHandler.ForbiddenResponse(c, "Your account is not allowed to upload videos")
			c.Abort()
			return
		}

		c.Next()
	}
}

// IdentityFromContext extracts the authenticated identity from the request context
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
