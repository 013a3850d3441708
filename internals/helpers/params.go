package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParamCode parses a positive int64 path parameter.
func ParamCode(c *fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Params(name))
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" is invalid")
	}
	return n, nil
}

// QueryBool returns nil when the query key is absent or not a boolean.
func QueryBool(c *fiber.Ctx, key string) *bool {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// QueryCode returns nil when the query key is absent or not a positive integer.
func QueryCode(c *fiber.Ctx, key string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(c.Query(key)), 10, 64)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}
