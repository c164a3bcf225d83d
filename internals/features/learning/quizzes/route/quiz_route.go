package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/quizzes/controller"
)

func QuizUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)
	user.Post("/quiz/validate", ctrl.Validate)
}
