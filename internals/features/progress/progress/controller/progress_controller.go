package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryService "capacitajun_backend/internals/features/learning/categories/service"
	"capacitajun_backend/internals/features/progress/progress/dto"
	"capacitajun_backend/internals/features/progress/progress/service"
	helper "capacitajun_backend/internals/helpers"
)

type UserProgressController struct {
	DB *gorm.DB
}

func NewUserProgressController(db *gorm.DB) *UserProgressController {
	return &UserProgressController{DB: db}
}

// 🟢 GET /api/u/progress
// Counters plus completed/total per category.
func (ctrl *UserProgressController) GetByUserID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	progress, err := service.GetUserProgress(c.UserContext(), ctrl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	categories, err := categoryService.ProgressByCategory(c.UserContext(), ctrl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Progresso carregado", fiber.Map{
		"progress":   dto.ToProgressResponse(progress),
		"categories": categories,
	})
}
