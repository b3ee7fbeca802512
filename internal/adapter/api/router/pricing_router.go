package router

import (
	"github.com/labstack/echo/v4"

	"charlygames/internal/adapter/api/handler"
	"charlygames/internal/adapter/api/middleware"
)

func SetupPricingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	priceBandHandler := handler.GetPriceBandHandler()

	admin := e.Group("/v1/admin/price-bands")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", priceBandHandler.ListBands)
	admin.POST("", priceBandHandler.CreateBand)
	admin.PUT("/:id", priceBandHandler.UpdateBand)
	admin.DELETE("/:id", priceBandHandler.DeleteBand)
	admin.GET("/suggest", priceBandHandler.Suggest)
}
