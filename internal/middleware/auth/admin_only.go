package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminOnly gates the admin surface behind a shared API key header.
type AdminOnly struct {
	APIKey string
}

func (m *AdminOnly) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.APIKey == "" {
			return echo.NewHTTPError(http.StatusForbidden, "admin access disabled")
		}
		key := c.Request().Header.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.APIKey)) != 1 {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing API key")
		}
		return next(c)
	}
}
