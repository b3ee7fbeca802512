package router

import (
	"github.com/labstack/echo/v4"

	"charlygames/internal/adapter/api/handler"
	"charlygames/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login)

	me := e.Group("/v1/auth")
	me.Use(authMiddleware.Authenticate)
	me.GET("/me", authHandler.Me)
	me.PUT("/password", authHandler.UpdatePassword)
}
