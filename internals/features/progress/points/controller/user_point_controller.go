package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/progress/points/dto"
	"capacitajun_backend/internals/features/progress/points/service"
	helper "capacitajun_backend/internals/helpers"
)

type UserPointLogController struct {
	DB *gorm.DB
}

func NewUserPointLogController(db *gorm.DB) *UserPointLogController {
	return &UserPointLogController{DB: db}
}

// 🟢 GET /api/u/points?source=&page=&per_page=
// Caller's XP history, newest first.
func (ctrl *UserPointLogController) GetByUserID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	logs, total, err := service.History(ctrl.DB.WithContext(c.UserContext()), userID, service.HistoryFilter{
		Source: c.Query("source"),
		Limit:  p.Limit(),
		Offset: p.Offset(),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonList(c, "Histórico de XP", dto.ToPointLogResponseList(logs), p.Pagination(total))
}
