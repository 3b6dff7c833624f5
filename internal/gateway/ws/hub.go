// Package ws bridges store change notifications to connected WebSocket
// clients.
package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
)

// Client represents a connected WebSocket client.
type Client struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// Hub manages WebSocket clients and fans broadcast frames out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	closed  bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Broadcast sends an event frame to all connected clients. Slow clients are
// skipped rather than blocking the caller.
func (h *Hub) Broadcast(event string, payload any) {
	frame, err := NewEventFrame(event, payload)
	if err != nil {
		slog.Error("marshal event frame", "error", err)
		return
	}
	data, err := MarshalFrame(frame)
	if err != nil {
		slog.Error("marshal frame", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	slog.Info("ws client connected", "clients", len(h.clients))
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		slog.Info("ws client disconnected", "clients", len(h.clients))
	}
}

// ServeWS handles a WebSocket upgrade and manages the client lifecycle.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // local single-user tool, any origin
	})
	if err != nil {
		slog.Error("ws accept", "error", err)
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 64),
		hub:  h,
	}
	h.register(client)

	ctx := r.Context()
	go client.writeLoop(ctx)
	client.readLoop(ctx)
}

// readLoop drains incoming frames; the protocol is push-only, so anything
// the client sends is discarded. Returning unregisters the client.
func (c *Client) readLoop(ctx context.Context) {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}

func (c *Client) writeLoop(ctx context.Context) {
	for data := range c.send {
		if err := c.conn.Write(ctx, websocket.MessageText, data); err != nil {
			return
		}
	}
}

// Close disconnects all clients and rejects new upgrades.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}
