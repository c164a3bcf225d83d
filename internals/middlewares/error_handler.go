package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
)

// ErrorHandler renders every error escaping a handler as the standard envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			logger.Log.WithError(err).WithField("path", c.Path()).Error("request failed")
		}
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.FromFiberError(c, err)
}
