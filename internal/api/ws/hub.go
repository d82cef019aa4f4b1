// Package ws broadcasts live world-state snapshots to connected browser
// visualizers over websockets.
//
// Go Learning Note — grounded on kcbsilva-TurboDriver's internal/dispatch.Hub:
// that hub tracks one connection set per ride ID with register/unregister
// channels feeding a single Run() goroutine. This simulator has exactly one
// "room" — the whole grid — so the per-ride map collapses to one connection
// set, but the register/unregister-via-channel shape (never touch the
// connection set from more than one goroutine) is kept as-is.
package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"ridesim/internal/engine"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type subscription struct {
	conn   *websocket.Conn
	remove bool
}

// Hub fans out engine.StateSnapshot values to every connected client.
type Hub struct {
	log         zerolog.Logger
	subscribe   chan subscription
	broadcastCh chan engine.StateSnapshot
}

// NewHub creates a Hub. Call Run in its own goroutine before serving traffic.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		log:         log,
		subscribe:   make(chan subscription),
		broadcastCh: make(chan engine.StateSnapshot, 16),
	}
}

// Run owns the connection set and must execute on a single goroutine — the
// same discipline kcbsilva's Hub.Run uses to avoid a mutex around the map.
func (h *Hub) Run() {
	conns := make(map[*websocket.Conn]struct{})
	for {
		select {
		case sub := <-h.subscribe:
			if sub.remove {
				delete(conns, sub.conn)
				sub.conn.Close()
				continue
			}
			conns[sub.conn] = struct{}{}

		case snap := <-h.broadcastCh:
			for conn := range conns {
				if err := conn.WriteJSON(snap); err != nil {
					h.log.Warn().Err(err).Msg("websocket write failed, dropping client")
					delete(conns, conn)
					conn.Close()
				}
			}
		}
	}
}

// Broadcast publishes a snapshot to every connected client. Safe to call from
// engine.World's OnChange hook.
func (h *Hub) Broadcast(snap engine.StateSnapshot) {
	select {
	case h.broadcastCh <- snap:
	default:
		h.log.Warn().Msg("broadcast channel full, dropping snapshot")
	}
}

// ServeWS upgrades an HTTP connection to a websocket and registers it for
// broadcast state updates.
func (h *Hub) ServeWS(c *http.Request, w http.ResponseWriter) error {
	conn, err := upgrader.Upgrade(w, c, nil)
	if err != nil {
		return err
	}
	h.subscribe <- subscription{conn: conn}

	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				h.subscribe <- subscription{conn: conn, remove: true}
				return
			}
		}
	}()
	return nil
}
