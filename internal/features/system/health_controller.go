package system

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db  Pinger
	hub *Hub
}

func NewHealthController(db Pinger, hub *Hub) *HealthController {
	return &HealthController{db: db, hub: hub}
}

// Health godoc
// @Summary      Service health
// @Description  Reports database reachability and connected dashboards
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthController) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	body := fiber.Map{
		"status":   "ok",
		"database": "up",
		"clients":  h.hub.Count(),
	}
	if err := h.db.Ping(ctx); err != nil {
		status = fiber.StatusServiceUnavailable
		body["status"] = "degraded"
		body["database"] = "down"
		body["error"] = err.Error()
	}

	return c.Status(status).JSON(body)
}
