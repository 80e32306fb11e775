package dashboard

import (
	"strconv"

	"studio-admin/internal/common/api"
	"studio-admin/internal/config"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	DashboardService DashboardService
	Config           *config.Config
}

func NewDashboardController(dashboardService DashboardService, cfg *config.Config) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		Config:           cfg,
	}
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  Member, access, usage, storage and report counts computed from the current data
// @Tags         dashboard
// @Produce      json
// @Success      200  {object} Stats
// @Failure      503  {string} string "Store unavailable"
// @Router       /api/dashboard/stats [get]
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	ctx, cancel := api.RequestContext(c, ctrl.Config.RequestTimeout)
	defer cancel()

	stats, err := ctrl.DashboardService.Stats(ctx)
	if err != nil {
		return api.Error(c, err)
	}
	return c.JSON(stats)
}

// GetBugReports godoc
// @Summary      Bug reports in display order
// @Description  Open first, then In Progress, Resolved, Closed; newest first within a status
// @Tags         dashboard
// @Produce      json
// @Success      200  {array} bugreport.BugReport
// @Router       /api/dashboard/bug-reports [get]
func (ctrl *DashboardController) GetBugReports(c *fiber.Ctx) error {
	ctx, cancel := api.RequestContext(c, ctrl.Config.RequestTimeout)
	defer cancel()

	reports, err := ctrl.DashboardService.DisplayReports(ctx)
	if err != nil {
		return api.Error(c, err)
	}
	return c.JSON(reports)
}

// ListSnapshots godoc
// @Summary      Stats history
// @Tags         dashboard
// @Produce      json
// @Param        limit query int false "Number of snapshots" default(24)
// @Success      200  {array} Snapshot
// @Router       /api/dashboard/snapshots [get]
func (ctrl *DashboardController) ListSnapshots(c *fiber.Ctx) error {
	limit, _ := strconv.ParseInt(c.Query("limit", "24"), 10, 64)

	ctx, cancel := api.RequestContext(c, ctrl.Config.RequestTimeout)
	defer cancel()

	snapshots, err := ctrl.DashboardService.ListSnapshots(ctx, limit)
	if err != nil {
		return api.Error(c, err)
	}
	return c.JSON(snapshots)
}
