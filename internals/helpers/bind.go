package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Normalizer is implemented by request DTOs that trim or canonicalise input.
type Normalizer interface {
	Normalize()
}

// ParseBody decodes the JSON body into dst, normalises it and validates it.
// Validation failures are returned as validator errors (rendered as 422).
func ParseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	return ValidateStruct(dst)
}
