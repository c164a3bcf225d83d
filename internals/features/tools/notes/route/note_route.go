package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/tools/notes/controller"
)

func NoteUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNoteController(db)

	user.Get("/notes", ctrl.List)
	user.Get("/lessons/:id/note", ctrl.Get)
	user.Put("/lessons/:id/note", ctrl.Put)
	user.Delete("/lessons/:id/note", ctrl.Delete)
}
