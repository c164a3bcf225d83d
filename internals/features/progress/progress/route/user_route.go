package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressController "capacitajun_backend/internals/features/progress/progress/controller"
)

func UserProgressRoutes(router fiber.Router, db *gorm.DB) {
	controller := progressController.NewUserProgressController(db)
	router.Get("/progress", controller.GetByUserID)
}
