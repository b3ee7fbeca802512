package router

import (
	"github.com/labstack/echo/v4"

	"charlygames/internal/adapter/api/handler"
	"charlygames/internal/adapter/api/middleware"
)

func SetupContactRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	contactHandler := handler.GetContactHandler()

	e.GET("/v1/contact", contactHandler.GetContact)

	admin := e.Group("/v1/admin/contact")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.PUT("", contactHandler.UpdateContact)
}
