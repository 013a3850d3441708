package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the auth middleware.
const (
	LocRawToken = "raw_token"
	LocAuthCode = "auth_code"
	LocRole     = "user_role"
	LocName     = "user_name"
)

var (
	ErrNoToken          = errors.New("no token provided")
	ErrInvalidTokenForm = errors.New("invalid token format")
)

// ExtractBearerToken reads "Authorization: Bearer <token>", tolerating
// repeated whitespace, any casing of "Bearer" and surrounding quotes.
func ExtractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", ErrNoToken
	}
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", ErrInvalidTokenForm
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", ErrInvalidTokenForm
	}
	return tok, nil
}

func GetRawAccessToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRawToken).(string); ok && v != "" {
		return v
	}
	tok, _ := ExtractBearerToken(c)
	return tok
}

// GetAuthCode returns the member or admin code of the caller.
func GetAuthCode(c *fiber.Ctx) (int64, error) {
	v, ok := c.Locals(LocAuthCode).(int64)
	if !ok || v <= 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return v, nil
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocRole).(string)
	return role
}
