package cron_feature

import (
	"studio-admin/internal/common/api"
	"studio-admin/internal/config"

	"github.com/gofiber/fiber/v2"
)

type CronController struct {
	Service CronService
	config  *config.Config
}

func NewCronController(service CronService, config *config.Config) *CronController {
	return &CronController{
		Service: service,
		config:  config,
	}
}

// ListCronJobs godoc
// @Summary List cron jobs
// @Description Registered jobs with their schedule, last and next run
// @Tags cron
// @Produce json
// @Success 200 {array} CronJob
// @Router       /api/cron-jobs [get]
func (c *CronController) ListCronJobs(ctx *fiber.Ctx) error {
	return ctx.JSON(c.Service.ListCronJobs())
}

// ExecuteCronJob godoc
// @Summary Execute cron job
// @Description Run a job immediately, outside its schedule
// @Tags cron
// @Produce json
// @Param name path string true "Cron Job name"
// @Success 200 {object} CronJobLog
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router       /api/cron-jobs/{name}/execute [post]
func (c *CronController) ExecuteCronJob(ctx *fiber.Ctx) error {
	ctxt, cancel := api.RequestContext(ctx, c.config.RequestTimeout)
	defer cancel()

	entry, err := c.Service.ExecuteCronJob(ctxt, ctx.Params("name"))
	if err != nil {
		return api.Error(ctx, err)
	}

	if entry.Status == StatusFailed {
		return ctx.Status(fiber.StatusInternalServerError).JSON(entry)
	}
	return ctx.JSON(entry)
}

// GetCronJobLogs godoc
// @Summary Get cron job logs
// @Description Recent executions of a job, newest first
// @Tags cron
// @Produce json
// @Param name path string true "Cron Job name"
// @Param limit query int false "Limit" default(20)
// @Success 200 {array} CronJobLog
// @Failure 404 {object} map[string]interface{}
// @Router       /api/cron-jobs/{name}/logs [get]
func (c *CronController) GetCronJobLogs(ctx *fiber.Ctx) error {
	logs, err := c.Service.GetCronJobLogs(ctx.Params("name"), ctx.QueryInt("limit", 0))
	if err != nil {
		return api.Error(ctx, err)
	}

	return ctx.JSON(logs)
}
