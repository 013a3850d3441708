package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Response is the success envelope shared by every handler.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

var errorCodes = map[int]string{
	fiber.StatusBadRequest:          "BAD_REQUEST",
	fiber.StatusUnauthorized:        "UNAUTHORIZED",
	fiber.StatusForbidden:           "FORBIDDEN",
	fiber.StatusNotFound:            "NOT_FOUND",
	fiber.StatusConflict:            "CONFLICT",
	fiber.StatusUnprocessableEntity: "VALIDATION_ERROR",
	fiber.StatusTooManyRequests:     "TOO_MANY_REQUESTS",
	fiber.StatusServiceUnavailable:  "SERVICE_UNAVAILABLE",
}

// StatusToErrorCode gives the generic error code for an HTTP status.
func StatusToErrorCode(status int) string {
	if code, ok := errorCodes[status]; ok {
		return code
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return "ERROR"
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	return JsonErrorCode(c, status, StatusToErrorCode(status), message)
}

func JsonErrorCode(c *fiber.Ctx, status int, code, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if status >= fiber.StatusInternalServerError && strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{Message: message, ErrorCode: code})
}

// JsonValidationError answers 422 with messages keyed by json field name.
func JsonValidationError(c *fiber.Ctx, fields map[string][]string) error {
	if fields == nil {
		fields = map[string][]string{}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Message:   "validation failed",
		ErrorCode: "VALIDATION_ERROR",
		Errors:    fields,
	})
}

func JsonOK(c *fiber.Ctx, message string, data any) error {
	return respond(c, fiber.StatusOK, orDefault(message, "ok"), data, nil)
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return respond(c, fiber.StatusCreated, orDefault(message, "created"), data, nil)
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return respond(c, fiber.StatusOK, orDefault(message, "updated"), data, nil)
}

func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return respond(c, fiber.StatusOK, orDefault(message, "deleted"), data, nil)
}

func JsonList(c *fiber.Ctx, message string, data any, pagination Pagination) error {
	return respond(c, fiber.StatusOK, orDefault(message, "ok"), data, &pagination)
}

func respond(c *fiber.Ctx, status int, message string, data any, pagination *Pagination) error {
	return c.Status(status).JSON(Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
