package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/progress/badges/controller"
)

func BadgeUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBadgeController(db)
	user.Get("/badges", ctrl.ListMine)
}

func BadgeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBadgeController(db)

	badges := admin.Group("/badges")
	badges.Get("/", ctrl.List)
	badges.Post("/", ctrl.Create)
	badges.Put("/:id", ctrl.Update)
	badges.Delete("/:id", ctrl.Delete)
}
