package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/tools/generators/controller"
	"capacitajun_backend/internals/features/tools/generators/service"
	rateLimiter "capacitajun_backend/internals/middlewares"
)

func GeneratorUserRoutes(user fiber.Router, db *gorm.DB, gw service.Gateway) {
	ctrl := controller.NewGeneratorController(db, gw)

	ai := user.Group("/ai")
	ai.Get("/generations", ctrl.History)

	limited := ai.Group("", rateLimiter.AIRateLimiter())
	limited.Post("/flashcards", ctrl.Flashcards)
	limited.Post("/summary", ctrl.Summary)
	limited.Post("/mindmap", ctrl.MindMap)
}
