package api

import (
	"context"
	"time"

	"studio-admin/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

// Route is an interface for any module that wants to register endpoints
type Route interface {
	Setup(app *fiber.App)
}

// RequestContext derives the store context for a request, bounded by timeout
func RequestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

// Error writes err as {"error": message} with the status of its kind
func Error(c *fiber.Ctx, err error) error {
	return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
