package system

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"studio-admin/internal/common/events"
	"studio-admin/internal/metrics"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

const (
	// sendBuffer is the number of events queued per client before it is dropped
	sendBuffer = 16
	writeWait  = 10 * time.Second
)

// Client is the write side of a dashboard connection
type Client interface {
	WriteMessage(messageType int, data []byte) error
}

// deadlineSetter is implemented by *websocket.Conn
type deadlineSetter interface {
	SetWriteDeadline(t time.Time) error
}

type subscriber struct {
	queue chan []byte
	quit  chan struct{}
	done  chan struct{}
}

// Hub fans change events out to every connected dashboard. It implements
// events.Notifier so services stay unaware of the transport. Each client has
// its own writer goroutine; Notify never waits on a connection.
type Hub struct {
	mu      sync.Mutex
	clients map[Client]*subscriber
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewHub(m *metrics.Metrics, logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[Client]*subscriber),
		metrics: m,
		logger:  logger,
	}
}

// AsNotifier exposes the hub to the services
func AsNotifier(h *Hub) events.Notifier {
	return h
}

// Register starts delivering events to c. The returned channel is closed once
// the client's writer has stopped, after which c is no longer written to.
func (h *Hub) Register(c Client) <-chan struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.clients[c]; ok {
		return sub.done
	}

	sub := &subscriber{
		queue: make(chan []byte, sendBuffer),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	h.clients[c] = sub
	if h.metrics != nil {
		h.metrics.WSConnectionOpened()
	}

	go h.writeLoop(c, sub)
	return sub.done
}

func (h *Hub) Unregister(c Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(c)
}

// remove must be called with mu held
func (h *Hub) remove(c Client) {
	sub, ok := h.clients[c]
	if !ok {
		return
	}
	delete(h.clients, c)
	close(sub.quit)
	if h.metrics != nil {
		h.metrics.WSConnectionClosed()
	}
}

// Count returns the number of connected dashboards
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Notify queues change for all clients. A client whose queue is full is
// dropped rather than waited on.
func (h *Hub) Notify(ctx context.Context, change events.Change) {
	payload, err := json.Marshal(change)
	if err != nil {
		h.logger.Error("Failed to encode change event", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c, sub := range h.clients {
		select {
		case sub.queue <- payload:
		default:
			h.logger.Warn("Dropping slow websocket client", zap.Int("queued", len(sub.queue)))
			h.remove(c)
		}
	}
}

func (h *Hub) writeLoop(c Client, sub *subscriber) {
	defer close(sub.done)

	for {
		select {
		case <-sub.quit:
			return
		case payload := <-sub.queue:
			if d, ok := c.(deadlineSetter); ok {
				_ = d.SetWriteDeadline(time.Now().Add(writeWait))
			}
			if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.Warn("Dropping websocket client", zap.Error(err))
				h.Unregister(c)
				return
			}
		}
	}
}
