package middlewares

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/exceptions"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/logger"
)

// ErrorHandler renders every error returned by a handler in the standard shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if ce, ok := exceptions.As(err); ok {
		return helper.JsonErrorCode(c, ce.StatusEnum.Code, ce.StatusEnum.Status, ce.Error())
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields, _ := helper.ValidationErrorMap(err)
		return helper.JsonValidationError(c, fields)
	}

	logger.WithRequest(RequestIDFrom(c)).
		WithError(err).
		WithField("path", c.Path()).
		Error("unhandled error")
	return helper.JsonErrorCode(c, fiber.StatusInternalServerError,
		exceptions.InternalError.Status, exceptions.InternalError.Message)
}
