package middlewares

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"capacitajun_backend/internals/helpers/logger"
)

// RecoveryMiddleware turns a panic into a 500 and logs the stack.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.Log.WithFields(logrus.Fields{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": c.Locals(LocRequestID),
				"stack":      string(debug.Stack()),
			}).Error(fmt.Sprintf("panic: %v", e))
		},
	})
}
