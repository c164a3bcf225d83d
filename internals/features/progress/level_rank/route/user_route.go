package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	levelController "capacitajun_backend/internals/features/progress/level_rank/controller"
)

func LevelRequirementUserRoute(router fiber.Router, db *gorm.DB) {
	levelCtrl := levelController.NewLevelRequirementController(db)

	// 🎯 read-only level table
	router.Get("/levels", levelCtrl.GetAll)
}
