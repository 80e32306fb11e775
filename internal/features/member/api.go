package member

import (
	"studio-admin/internal/config"
	"studio-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type MemberApi struct {
	controller *MemberController
	config     *config.Config
}

func NewMemberApi(controller *MemberController, config *config.Config) *MemberApi {
	return &MemberApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers all member-related routes
func (h *MemberApi) Setup(app *fiber.App) {
	members := app.Group("/api/members", middleware.AuthMiddleware(h.config.SkipAuth))

	members.Get("/", h.controller.ListMembers)
	members.Post("/", h.controller.CreateMember)
	// before /:id so "export" is not taken for an id
	members.Get("/export", h.controller.ExportMembers)
	members.Get("/:id", h.controller.GetMember)
	members.Put("/:id", h.controller.UpdateMember)
	members.Delete("/:id", h.controller.DeleteMember)

	// Access flags
	members.Put("/:id/access", h.controller.UpdateAccess)
	members.Put("/:id/access/:field", h.controller.UpdateAccess)
}
