package events

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"charlygames/pkg/logger"
)

// ChangeEvent mirrors the gateway's change-notification payload: which table
// mutated. Subscribed sessions refetch on receipt rather than patching rows.
type ChangeEvent struct {
	Table string `json:"table"`
	Event string `json:"event"`
}

// Client is one connected browsing session.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans change events out to every connected session. Broadcast-only: the
// feed carries no client-to-server messages.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Start runs the hub's main loop in a goroutine until ctx is cancelled.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				h.clients[client.ID] = client
				h.mutex.Unlock()
				logger.Debug("Feed client registered: %s", client.ID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if _, ok := h.clients[client.ID]; ok {
					delete(h.clients, client.ID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Debug("Feed client unregistered: %s", client.ID)

			case message := <-h.broadcast:
				h.mutex.Lock()
				for id, client := range h.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(h.clients, id)
					}
				}
				h.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Broadcast queues a message for every connected session. Drops the message if
// the hub's buffer is full rather than blocking a mutation path.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		logger.Warn("Feed broadcast buffer full, dropping event")
	}
}

// ReadPump drains (and discards) incoming frames so close handshakes and pings
// are processed, unregistering on disconnect.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Feed read error: %v", err)
			}
			break
		}
	}
}

// WritePump forwards queued events to the connection until Send is closed.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
