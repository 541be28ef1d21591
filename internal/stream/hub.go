package stream

import (
	"context"
	"log/slog"
	"sync"

	"nhl-scoreboard/internal/logging"
	"nhl-scoreboard/internal/metrics"
)

const broadcastBuffer = 64

// Hub maintains the set of connected frame viewers and fans broadcast frames
// out to them.
type Hub struct {
	logger  *slog.Logger
	metrics *metrics.Recorder

	clientsMu sync.RWMutex
	clients   map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger, recorder *metrics.Recorder) *Hub {
	return &Hub{
		logger:     logger,
		metrics:    recorder,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run drives the hub until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.addClient(c)
		case c := <-h.unregister:
			h.removeClient(c)
		case frame := <-h.broadcast:
			h.fanOut(frame)
		}
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Broadcast queues a frame for all clients, dropping it when the queue is
// full rather than stalling the render loop.
func (h *Hub) Broadcast(frame []byte) {
	select {
	case h.broadcast <- frame:
	default:
		logging.Warn(h.logger, "frame broadcast queue full, dropping frame")
	}
}

// ClientCount returns the number of connected viewers.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) addClient(c *Client) {
	h.clientsMu.Lock()
	h.clients[c] = true
	total := len(h.clients)
	h.clientsMu.Unlock()

	h.metrics.RecordStreamClients(1)
	logging.Info(h.logger, "stream client connected", slog.String("client_id", c.ID), slog.Int(logging.FieldCount, total))
}

func (h *Hub) removeClient(c *Client) {
	h.clientsMu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
	}
	total := len(h.clients)
	h.clientsMu.Unlock()

	if !ok {
		return
	}
	close(c.send)
	h.metrics.RecordStreamClients(-1)
	logging.Info(h.logger, "stream client disconnected", slog.String("client_id", c.ID), slog.Int(logging.FieldCount, total))
}

func (h *Hub) fanOut(frame []byte) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if !c.trySend(frame) {
			// Slow client: cut it loose rather than blocking the rest.
			logging.Warn(h.logger, "stream client too slow, dropping", slog.String("client_id", c.ID))
			go h.Unregister(c)
		}
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
		h.metrics.RecordStreamClients(-1)
	}
}
