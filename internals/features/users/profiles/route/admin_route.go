package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileController "capacitajun_backend/internals/features/users/profiles/controller"
)

func ProfileAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)

	users := router.Group("/users")
	users.Get("/", ctrl.AdminListUsers)
	users.Patch("/:id/role", ctrl.AdminUpdateRole)
	users.Patch("/:id/active", ctrl.AdminUpdateActive)
}
