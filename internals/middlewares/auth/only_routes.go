package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "capacitajun_backend/internals/helpers"
)

// OnlyRolesSlice lets the request through when the user holds one of allowedRoles.
func OnlyRolesSlice(message string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(helper.LocUserRole).(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Não autorizado")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return helper.JsonError(c, fiber.StatusForbidden, message)
	}
}
