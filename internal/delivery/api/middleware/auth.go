// Package middleware contains the API-specific echo middleware.
package middleware

import (
	"strings"

	deliverycontext "pillmate/internal/delivery/context"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// AuthMiddleware provides middleware for user JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService}
}

// Authenticate rejects requests without a valid Bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.authenticate(c)
		if err != nil {
			return err
		}
		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// Optional records the user when a valid token is present and lets anonymous requests through.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}
		if userID, err := m.authenticate(c); err == nil {
			deliverycontext.SetUserID(c, userID)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context) (uuid.UUID, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
	}

	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenString == "" {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
	}

	return claims.UserID, nil
}
