package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "learnsmate_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter for every endpoint.
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, time.Minute, "too many requests, try again later")
}

func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, "too many login attempts, try again later")
}

// SmsRateLimiter guards the paid SMS endpoint.
func SmsRateLimiter() fiber.Handler {
	return newLimiter(3, 5*time.Minute, "too many verification requests, wait a few minutes")
}

// VerifyRateLimiter throttles code guessing on verify-code.
func VerifyRateLimiter() fiber.Handler {
	return newLimiter(5, 5*time.Minute, "too many verification attempts, wait a few minutes")
}
