package router

import (
	"github.com/labstack/echo/v4"

	"charlygames/internal/adapter/api/handler"
	"charlygames/internal/adapter/api/middleware"
)

func SetupGameRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	gameHandler := handler.GetGameHandler()

	games := e.Group("/v1/games")
	games.GET("", gameHandler.Browse)
	games.GET("/recent", gameHandler.Recent)
	games.GET("/categories", gameHandler.Categories)
	games.GET("/:id", gameHandler.GetGame)

	e.GET("/v1/catalog", gameHandler.Catalog)

	admin := e.Group("/v1/admin/games")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", gameHandler.CreateGame)
	admin.PUT("/:id", gameHandler.UpdateGame)
	admin.DELETE("/:id", gameHandler.DeleteGame)
}

// SetupRestGamesRouter mounts the alternate flat-REST surface used by clients
// that talk to a local endpoint instead of the gateway directly.
func SetupRestGamesRouter(e *echo.Echo, restHandler *handler.RestGamesHandler) {
	api := e.Group("/api/games")
	api.GET("", restHandler.ListGames)
	api.POST("", restHandler.CreateGame)
	api.PUT("", restHandler.UpdateGame)
	api.DELETE("", restHandler.DeleteGame)
}
