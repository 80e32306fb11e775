package bugreport

import (
	"studio-admin/internal/config"
	"studio-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type BugReportApi struct {
	controller *BugReportController
	config     *config.Config
}

func NewBugReportApi(controller *BugReportController, config *config.Config) *BugReportApi {
	return &BugReportApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers all bug report routes
func (h *BugReportApi) Setup(app *fiber.App) {
	reports := app.Group("/api/bug-reports", middleware.AuthMiddleware(h.config.SkipAuth))

	reports.Get("/", h.controller.ListReports)
	reports.Post("/", h.controller.CreateReport)
	reports.Post("/resolve", h.controller.ResolveReport)
	reports.Get("/:id", h.controller.GetReport)
	reports.Put("/:id/resolve", h.controller.ResolveReport)
}
