package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"charlygames/internal/infrastructure/events"
	"charlygames/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventsHandler upgrades browsing sessions onto the change feed so they can
// re-sync their catalog caches when any session mutates the table.
type EventsHandler struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{
		hub: hub,
	}
}

func (h *EventsHandler) Subscribe(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Websocket upgrade failed: %v", err)
		return err
	}

	client := &events.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 8),
	}

	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump(h.hub)

	return nil
}
