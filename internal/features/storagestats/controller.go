package storagestats

import (
	"studio-admin/internal/common/api"
	"studio-admin/internal/config"

	"github.com/gofiber/fiber/v2"
)

type StorageController struct {
	Provider Provider
	config   *config.Config
}

func NewStorageController(provider Provider, config *config.Config) *StorageController {
	return &StorageController{Provider: provider, config: config}
}

// GetStorage godoc
// @Summary      Storage usage
// @Description  Raw reading of the configured storage collaborator
// @Tags         storage
// @Produce      json
// @Success      200  {object} Storage
// @Failure      503  {string} string "Storage collaborator unavailable"
// @Router       /api/storage [get]
func (ctrl *StorageController) GetStorage(c *fiber.Ctx) error {
	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	storage, err := ctrl.Provider.Storage(ctx)
	if err != nil {
		return api.Error(c, err)
	}
	return c.JSON(storage)
}
