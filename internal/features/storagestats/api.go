package storagestats

import (
	"studio-admin/internal/config"
	"studio-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type StorageApi struct {
	controller *StorageController
	config     *config.Config
}

func NewStorageApi(controller *StorageController, config *config.Config) *StorageApi {
	return &StorageApi{controller: controller, config: config}
}

func (h *StorageApi) Setup(app *fiber.App) {
	app.Get("/api/storage", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.GetStorage)
}
