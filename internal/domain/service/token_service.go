package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	Type   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating user JWTs.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the user.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration
}
