package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lojinha/catalog-api/internal/core/ports"
)

// Context keys set by Auth and read by handlers and Ability.
const (
	ContextKeyUserID = "user_id"
	ContextKeyToken  = "token"
)

// Auth resolves the bearer token against the token store and injects the
// authenticated identity into context. Missing, malformed, unknown, and
// expired tokens all fail with 401.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			token, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextKeyUserID, token.UserID)
			c.Set(ContextKeyToken, token)

			return next(c)
		}
	}
}
