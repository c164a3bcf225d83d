package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badgeRoute "capacitajun_backend/internals/features/progress/badges/route"
	leaderboardRoute "capacitajun_backend/internals/features/progress/leaderboard/route"
	levelRoute "capacitajun_backend/internals/features/progress/level_rank/route"
	pointRoute "capacitajun_backend/internals/features/progress/points/route"
	progressRoute "capacitajun_backend/internals/features/progress/progress/route"
)

// 🏆 /api/u/progress, points, levels, badges, leaderboard
func ProgressUserRoutes(user fiber.Router, db *gorm.DB) {
	progressRoute.UserProgressRoutes(user, db)
	pointRoute.UserPointRoutes(user, db)
	levelRoute.LevelRequirementUserRoute(user, db)
	badgeRoute.BadgeUserRoutes(user, db)
	leaderboardRoute.LeaderboardUserRoutes(user, db)
}

func ProgressAdminRoutes(admin fiber.Router, db *gorm.DB) {
	levelRoute.LevelRequirementAdminRoute(admin, db)
	badgeRoute.BadgeAdminRoutes(admin, db)
}
