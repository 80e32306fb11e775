package system

import (
	"studio-admin/internal/common/api"
	"studio-admin/internal/config"
	"studio-admin/internal/middleware"
	"studio-admin/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionApi lets the dashboard check its token and show who is signed in
type SessionApi struct {
	config *config.Config
}

func NewSessionApi(cfg *config.Config) api.Route {
	return &SessionApi{config: cfg}
}

func (h *SessionApi) Setup(app *fiber.App) {
	app.Get("/api/session", middleware.AuthMiddleware(h.config.SkipAuth), h.CurrentAdmin)
}

// CurrentAdmin godoc
// @Summary      Current administrator
// @Description  Identity carried by the bearer token
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/session [get]
func (h *SessionApi) CurrentAdmin(c *fiber.Ctx) error {
	claims, ok := utils.ClaimsFromContext(c.UserContext())
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No claims"})
	}

	resp := fiber.Map{
		"user_id":  claims.UserID,
		"username": claims.Username,
	}
	if claims.ExpiresAt != nil {
		resp["expires_at"] = claims.ExpiresAt.Time
	}
	return c.JSON(resp)
}
