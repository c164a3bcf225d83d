package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken reads c.Locals("user_id").
// 401 when absent, 400 when malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
		}
		return t, nil
	case string:
		return parseUserID(t)
	case []byte:
		return parseUserID(string(t))
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID de usuário inválido no token")
	}
}

func parseUserID(raw string) (uuid.UUID, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID de usuário inválido no token")
	}
	return id, nil
}
