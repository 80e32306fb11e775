package cron_feature

import (
	"studio-admin/internal/config"
	"studio-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CronApi struct {
	cronController *CronController
	config         *config.Config
}

func NewCronApi(cronController *CronController, config *config.Config) *CronApi {
	return &CronApi{
		cronController: cronController,
		config:         config,
	}
}

func (h *CronApi) Setup(app *fiber.App) {
	cronJobs := app.Group("/api/cron-jobs", middleware.AuthMiddleware(h.config.SkipAuth))

	cronJobs.Get("/", h.cronController.ListCronJobs)
	cronJobs.Post("/:name/execute", h.cronController.ExecuteCronJob)
	cronJobs.Get("/:name/logs", h.cronController.GetCronJobLogs)
}
