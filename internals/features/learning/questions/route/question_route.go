package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/questions/controller"
)

func QuestionUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionController(db)
	user.Get("/lessons/:id/questions", ctrl.ListForLearner)
}

func QuestionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionController(db)

	admin.Get("/lessons/:id/questions", ctrl.ListForAdmin)
	admin.Post("/lessons/:id/questions", ctrl.Create)
	admin.Post("/lessons/:id/questions/import", ctrl.Import)
	admin.Put("/questions/:id", ctrl.Update)
	admin.Delete("/questions/:id", ctrl.Delete)
}
