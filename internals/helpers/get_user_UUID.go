package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth middleware.
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocUserName = "user_name"
)

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" inválido")
	}
	return id, nil
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

func GetUserName(c *fiber.Ctx) string {
	name, _ := c.Locals(LocUserName).(string)
	return name
}
