package handler

import (
	"net/http"
	"strings"

	"selnet/internal/auth/model"
	"selnet/internal/auth/token"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "selnet_claims"

// AuthMiddleware is the single trust boundary for protected routes: it
// verifies the bearer credential and attaches the verified claims to the
// context. Handlers never read role or scope from client-supplied state.
type AuthMiddleware struct {
	verifier   *token.Verifier
	cookieName string
}

func NewAuthMiddleware(v *token.Verifier, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{verifier: v, cookieName: cookieName}
}

func (m *AuthMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := m.extractToken(c)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthenticated", Message: "Authentication required"},
				})
			}

			claims, err := m.verifier.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthenticated", Message: "Authentication required"},
				})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// extractToken prefers the Authorization header, falling back to the session
// cookie.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if cookie, err := c.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// CurrentClaims returns the verified claims attached by the middleware, or
// nil when the route is unauthenticated.
func CurrentClaims(c echo.Context) *token.Claims {
	claims, _ := c.Get(claimsContextKey).(*token.Claims)
	return claims
}
