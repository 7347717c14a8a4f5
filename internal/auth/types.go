package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role represents a user profile role
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Config represents authentication configuration settings
type Config struct {
	JWT struct {
		Secret         string        `mapstructure:"secret"`
		AccessTokenTTL time.Duration `mapstructure:"accessTokenTTL"`
	} `mapstructure:"jwt"`
}

// TokenClaims represents the claims carried by an access token
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the session identity the rest of the application consumes. It
// is read-only from the pipeline's perspective.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// CanUpload reports whether the identity is allowed to publish videos
func (i Identity) CanUpload() bool {
	return i.Role == RoleTeacher || i.Role == RoleAdmin
}
