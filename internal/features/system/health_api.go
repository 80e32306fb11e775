package system

import (
	"studio-admin/internal/common/api"
	"studio-admin/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	controller *HealthController
	metrics    *metrics.Metrics
}

func NewHealthApi(controller *HealthController, m *metrics.Metrics) api.Route {
	return &HealthApi{
		controller: controller,
		metrics:    m,
	}
}

// Setup registers the unauthenticated health and scrape endpoints
func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/health", h.controller.Health)
	app.Get("/metrics", h.metrics.Handler())
}
