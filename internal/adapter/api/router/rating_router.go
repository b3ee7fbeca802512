package router

import (
	"github.com/labstack/echo/v4"

	"charlygames/internal/adapter/api/handler"
)

func SetupRatingRouter(e *echo.Echo) {
	ratingHandler := handler.GetRatingHandler()

	e.GET("/v1/games/top-rated", ratingHandler.TopRated)

	ratings := e.Group("/v1/games/:id/ratings")
	ratings.POST("", ratingHandler.SubmitRating)
	ratings.GET("", ratingHandler.GameAverage)
}
