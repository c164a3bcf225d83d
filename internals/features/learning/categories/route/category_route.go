package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/categories/controller"
)

func CategoryUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)
	user.Get("/categories", ctrl.List)
}

func CategoryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)

	categories := admin.Group("/categories")
	categories.Post("/", ctrl.Create)
	categories.Put("/:id", ctrl.Update)
	categories.Delete("/:id", ctrl.Delete)
}
