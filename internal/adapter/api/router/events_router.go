package router

import (
	"github.com/labstack/echo/v4"

	"charlygames/internal/adapter/api/handler"
)

func SetupEventsRouter(e *echo.Echo, eventsHandler *handler.EventsHandler) {
	e.GET("/v1/ws", eventsHandler.Subscribe)
}
