package middleware

import (
	"slices"
	"strings"

	"vend/internal/delivery/api/response"
	deliverycontext "vend/internal/delivery/context"
	"vend/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the resolved account
// reference on the context. The purchase engine trusts this reference as-is.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(string(deliverycontext.KeyAccountID), claims.AccountID)
		c.Set(string(deliverycontext.KeyRoles), claims.Roles)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the account has a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !HasRole(c, requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// GetAccountID returns the authenticated account ID set by Authenticate.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	accountID, ok := c.Get(string(deliverycontext.KeyAccountID)).(uuid.UUID)

	return accountID, ok
}

// HasRole reports whether the authenticated account carries the role.
func HasRole(c echo.Context, role string) bool {
	roles, ok := c.Get(string(deliverycontext.KeyRoles)).([]string)
	if !ok {
		return false
	}

	return slices.Contains(roles, role)
}
