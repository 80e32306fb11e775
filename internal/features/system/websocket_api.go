package system

import (
	"studio-admin/internal/common/api"
	"studio-admin/internal/config"
	"studio-admin/pkg/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type WebSocketApi struct {
	Controller *WebSocketController
	config     *config.Config
}

func NewWebSocketApi(controller *WebSocketController, cfg *config.Config) api.Route {
	return &WebSocketApi{
		Controller: controller,
		config:     cfg,
	}
}

func (h *WebSocketApi) Setup(app *fiber.App) {
	app.Use("/api/ws", h.upgrade)
	app.Get("/api/ws", websocket.New(h.Controller.HandleWebSocket))
}

// upgrade admits websocket handshakes only. Browsers cannot set headers on
// the handshake, so the token travels in ?token=.
func (h *WebSocketApi) upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	if h.config.SkipAuth {
		return c.Next()
	}
	if _, err := utils.ValidateToken(c.Query("token")); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}
	return c.Next()
}
