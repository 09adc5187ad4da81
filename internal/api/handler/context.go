package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lojinha/catalog-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. Its absence means the middleware did not run on this route,
// which is treated as an unauthenticated request.
func ctxUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.ContextKeyUserID).(int64)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
