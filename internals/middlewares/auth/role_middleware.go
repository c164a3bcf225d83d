package auth

import (
	"github.com/gofiber/fiber/v2"
)

const defaultForbiddenMessage = "Acesso negado"

// OnlyRoles is the variadic form of OnlyRolesSlice.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	if customMessage == "" {
		customMessage = defaultForbiddenMessage
	}
	return OnlyRolesSlice(customMessage, roles)
}
