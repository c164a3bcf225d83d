package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/progress/leaderboard/controller"
)

func LeaderboardUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLeaderboardController(db)
	user.Get("/leaderboard", ctrl.Get)
}
