// Package socket keeps one WebSocket connection per signed-in user and
// pushes notification payloads to them.
package socket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/peusirf-a11y/requisicao-digital/internal/obs"
)

// client wraps a connection with a write lock. The websocket protocol allows
// only one concurrent writer per connection.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub tracks active WebSocket connections keyed by user id. A user opening a
// second connection replaces the first.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*client)}
}

// Register attaches a connection for the user, closing any previous one.
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	prev := h.clients[userID]
	h.clients[userID] = &client{conn: conn}
	h.mu.Unlock()
	if prev != nil {
		prev.conn.Close()
	}
}

// Unregister drops the user's connection if it is still the registered one.
func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c := h.clients[userID]; c != nil && c.conn == conn {
		delete(h.clients, userID)
	}
}

// Push sends one JSON payload to the user's connection, if any. Delivery is
// best effort: an offline user or a write failure is logged and dropped.
// Implements notify.Pusher.
func (h *Hub) Push(userID string, payload any) {
	h.mu.RLock()
	c, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		obs.LogEntry(map[string]any{
			"event": "ws_marshal_failed",
			"user":  userID,
			"error": err.Error(),
		})
		return
	}
	if err := c.write(data); err != nil {
		obs.LogEntry(map[string]any{
			"event": "ws_write_failed",
			"user":  userID,
			"error": err.Error(),
		})
		h.Unregister(userID, c.conn)
		c.conn.Close()
	}
}

// Connected reports how many users currently hold a connection.
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
