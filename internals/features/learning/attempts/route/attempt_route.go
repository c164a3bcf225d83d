package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/attempts/controller"
	"capacitajun_backend/internals/features/learning/quizzes/session"
)

func AttemptUserRoutes(user fiber.Router, db *gorm.DB, store *session.Store) {
	ctrl := controller.NewAttemptController(db, store)

	attempt := user.Group("/lessons/:id/attempt")
	attempt.Get("/", ctrl.Get)
	attempt.Post("/start", ctrl.Start)
	attempt.Put("/answer", ctrl.Answer)
	attempt.Post("/next", ctrl.Next)
	attempt.Post("/prev", ctrl.Prev)
	attempt.Post("/submit", ctrl.Submit)
	attempt.Post("/retry", ctrl.Retry)
	attempt.Delete("/", ctrl.Reset)
}
