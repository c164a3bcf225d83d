package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	levelController "capacitajun_backend/internals/features/progress/level_rank/controller"
)

// Mounted under /api/a, which already enforces the admin role.
func LevelRequirementAdminRoute(router fiber.Router, db *gorm.DB) {
	levelCtrl := levelController.NewLevelRequirementController(db)

	levelRoutes := router.Group("/levels")
	levelRoutes.Post("/", levelCtrl.Create)
	levelRoutes.Put("/:id", levelCtrl.Update)
	levelRoutes.Delete("/:id", levelCtrl.Delete)
}
