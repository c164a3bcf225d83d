package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/progress/leaderboard/service"
	helper "capacitajun_backend/internals/helpers"
)

type LeaderboardController struct {
	DB *gorm.DB
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{DB: db}
}

// 🟢 GET /api/u/leaderboard?limit=
func (ctrl *LeaderboardController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	top, err := service.Top(c.UserContext(), ctrl.DB, c.QueryInt("limit", service.DefaultLimit))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	me, err := service.Position(c.UserContext(), ctrl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Ranking carregado", fiber.Map{
		"entries": top,
		"me":      me,
	})
}
