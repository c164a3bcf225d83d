package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationRoute "capacitajun_backend/internals/features/notifications/route"
	profileRoute "capacitajun_backend/internals/features/users/profiles/route"
)

// 👤 /api/u/profile, /api/u/notifications
func UserUserRoutes(user fiber.Router, db *gorm.DB) {
	profileRoute.ProfileUserRoutes(user, db)
	notificationRoute.NotificationUserRoutes(user, db)
}

// 🔐 /api/a/users
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	profileRoute.ProfileAdminRoutes(admin, db)
}
