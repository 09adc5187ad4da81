package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lojinha/catalog-api/internal/core/domain"
)

// Ability enforces that the authenticated token carries the named ability
// (or the wildcard). Must run after Auth. Failure is 401, not 403: every
// authorization problem is reported as Unauthorized.
func Ability(ability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(ContextKeyToken).(*domain.Token)
			if !ok || !token.Can(ability) {
				return echo.NewHTTPError(http.StatusUnauthorized, "token lacks required ability")
			}
			return next(c)
		}
	}
}
