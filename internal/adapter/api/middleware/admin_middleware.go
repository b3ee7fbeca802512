package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminMiddleware gates the admin console routes. Admin capability is an
// "admin" custom claim set on the provider account out of band; nothing about
// authorization is decided in this codebase.
type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("claims").(map[string]interface{})
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if admin, ok := claims["admin"].(bool); !ok || !admin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
