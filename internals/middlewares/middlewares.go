package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/middlewares/logger"
)

const requestTimeout = 5 * time.Second

// SetupMiddlewares installs the global chain shared by every route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RequestID())
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(RequestTimeout(requestTimeout))
}

// RequestTimeout bounds the user context so DB calls inherit the deadline.
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
