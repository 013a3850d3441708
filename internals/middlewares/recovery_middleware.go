package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"learnsmate_backend/internals/logger"
)

// RecoveryMiddleware turns panics into 500 responses.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.WithRequest(RequestIDFrom(c)).
				WithField("path", c.Path()).
				Errorf("panic recovered: %v", e)
		},
	})
}
