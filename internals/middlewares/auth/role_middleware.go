package auth

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/exceptions"
	helper "learnsmate_backend/internals/helpers"
)

// OnlyRolesSlice allows the request when the caller holds one of allowedRoles.
func OnlyRolesSlice(message string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRole(c)
		if role == "" {
			return exceptions.WithDetail(exceptions.Unauthorized, "role not found")
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		if message == "" {
			return exceptions.New(exceptions.Forbidden)
		}
		return exceptions.WithDetail(exceptions.Forbidden, message)
	}
}

func OnlyRoles(message string, roles ...string) fiber.Handler {
	return OnlyRolesSlice(message, roles)
}
