package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/lessons/controller"
)

func LessonUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLessonController(db)

	user.Get("/categories/:id/lessons", ctrl.ListByCategory)
	user.Get("/lessons/search", ctrl.Search)
	user.Get("/lessons/:id", ctrl.Detail)
}

func LessonAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLessonController(db)

	lessons := admin.Group("/lessons")
	lessons.Post("/", ctrl.Create)
	lessons.Put("/:id", ctrl.Update)
	lessons.Patch("/:id/reorder", ctrl.Reorder)
	lessons.Delete("/:id", ctrl.Delete)
}
