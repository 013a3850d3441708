package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"learnsmate_backend/internals/configs"
)

// CorsMiddleware allows the single frontend origin.
func CorsMiddleware() fiber.Handler {
	origin := configs.FrontendOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "*",
		AllowCredentials: true,
		ExposeHeaders:    fiber.HeaderAuthorization,
		MaxAge:           3600,
	})
}
