package httpapi

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/peusirf-a11y/requisicao-digital/internal/obs"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || isLocalOrigin(origin)
	},
}

// WebSocket upgrades the connection and registers it in the hub for
// notification pushes. The socket is read-only for the client; incoming
// frames are drained until the peer disconnects.
func (a *API) WebSocket(w http.ResponseWriter, r *http.Request) {
	if a.hub == nil {
		http.Error(w, "websocket disabled", http.StatusServiceUnavailable)
		return
	}
	actor, err := a.actor(r)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		obs.LogEntry(map[string]any{
			"event": "ws_upgrade_failed",
			"user":  actor.ID,
			"error": err.Error(),
		})
		return
	}

	a.hub.Register(actor.ID, conn)
	defer func() {
		a.hub.Unregister(actor.ID, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
