package middleware

import (
	"strings"

	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is where the authenticated principal's ID is stored on the
// echo context.
const ContextKeyUserID = "userID"

// AuthMiddleware resolves the authenticated principal from a bearer ID token.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer ID token and stores the principal's user
// ID on the context. The identity platform is the source of truth; the ID is
// never taken from caller-supplied data.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WithDetails("Invalid token format, must be Bearer token")
		}

		userID, err := m.verifier.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WithDetails("Invalid or expired token")
		}

		// Set the principal on the context for handlers to use
		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}
