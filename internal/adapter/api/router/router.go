package router

import (
	"github.com/labstack/echo/v4"

	"charlygames/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupGameRouter(e, authMiddleware, adminMiddleware)
	SetupPricingRouter(e, authMiddleware, adminMiddleware)
	SetupRatingRouter(e)
	SetupSubscriberRouter(e, authMiddleware, adminMiddleware)
	SetupContactRouter(e, authMiddleware, adminMiddleware)
	SetupUploadRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
