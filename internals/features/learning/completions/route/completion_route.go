package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/completions/controller"
)

func CompletionUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCompletionController(db)

	user.Post("/lessons/:id/quiz/submit", ctrl.Submit)
	user.Post("/lessons/:id/complete", ctrl.Complete)
	user.Get("/completions", ctrl.List)
}
