package dashboard

import (
	"studio-admin/internal/common/api"
	"studio-admin/internal/config"
	"studio-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	DashboardController *DashboardController
	Config              *config.Config
}

func NewDashboardApi(dashboardController *DashboardController, cfg *config.Config) api.Route {
	return &DashboardApi{
		DashboardController: dashboardController,
		Config:              cfg,
	}
}

func (api *DashboardApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboard", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/stats", api.DashboardController.GetStats)
	group.Get("/bug-reports", api.DashboardController.GetBugReports)
	group.Get("/snapshots", api.DashboardController.ListSnapshots)
}
