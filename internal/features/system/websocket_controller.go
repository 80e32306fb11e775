package system

import (
	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

type WebSocketController struct {
	hub    *Hub
	logger *zap.Logger
}

func NewWebSocketController(hub *Hub, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		hub:    hub,
		logger: logger,
	}
}

// HandleWebSocket keeps the connection registered until the peer goes away.
// The stream is one-way; inbound messages are read and discarded.
func (h *WebSocketController) HandleWebSocket(c *websocket.Conn) {
	done := h.hub.Register(c)
	defer func() {
		h.hub.Unregister(c)
		// the connection is recycled once the handler returns
		<-done
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read", zap.Error(err))
			}
			return
		}
	}
}
