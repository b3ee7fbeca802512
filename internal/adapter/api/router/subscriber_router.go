package router

import (
	"github.com/labstack/echo/v4"

	"charlygames/internal/adapter/api/handler"
	"charlygames/internal/adapter/api/middleware"
)

func SetupSubscriberRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	subscriberHandler := handler.GetSubscriberHandler()

	e.POST("/v1/subscribers", subscriberHandler.Subscribe)

	admin := e.Group("/v1/admin/subscribers")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", subscriberHandler.ListSubscribers)
}
