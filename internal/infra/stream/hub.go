// Package stream exposes a websocket feed of Monte Carlo progress and
// results, so external chart clients can follow a long run live.
package stream

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"
)

// ProgressEvent is pushed after each completed path.
type ProgressEvent struct {
	Type      string `json:"type"` // always "progress"
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// ResultEvent carries the final averaged series.
type ResultEvent struct {
	Type   string                  `json:"type"` // always "result"
	RunID  string                  `json:"run_id,omitempty"`
	Policy string                  `json:"policy"`
	Series *domain.AggregateResult `json:"series"`
}

// Hub tracks connected websocket clients and broadcasts events to them.
// Clients are write-only; anything they send is discarded.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	closed  bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Local tool, no cross-origin policy to enforce
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP upgrades the request and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	slog.Debug("stream client connected", slog.String("remote", conn.RemoteAddr().String()))

	// Drain the connection to notice the client going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(conn)
				return
			}
		}
	}()
}

// Broadcast sends v as JSON to every connected client. Clients that fail
// to accept the write are dropped.
func (h *Hub) Broadcast(v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(v); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects all clients and rejects future ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
}
