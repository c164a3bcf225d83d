package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pointController "capacitajun_backend/internals/features/progress/points/controller"
)

func UserPointRoutes(router fiber.Router, db *gorm.DB) {
	userPointLogController := pointController.NewUserPointLogController(db)
	router.Get("/points", userPointLogController.GetByUserID)
}
