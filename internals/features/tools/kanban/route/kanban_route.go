package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/tools/kanban/controller"
)

func KanbanUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKanbanController(db)

	kanban := user.Group("/kanban")
	kanban.Get("/", ctrl.Board)
	kanban.Post("/", ctrl.Create)
	kanban.Put("/:id", ctrl.Update)
	kanban.Patch("/:id/move", ctrl.Move)
	kanban.Delete("/:id", ctrl.Delete)
}
