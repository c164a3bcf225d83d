package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "capacitajun_backend/internals/features/users/auth/route"
)

// AuthRoutes mounts /api/auth/*; the group carries its own guards.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(api, db)
}
