package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/progress/level_rank/dto"
	"capacitajun_backend/internals/features/progress/level_rank/model"
	"capacitajun_backend/internals/features/progress/level_rank/service"
	progressModel "capacitajun_backend/internals/features/progress/progress/model"
	helper "capacitajun_backend/internals/helpers"
)

type LevelRequirementController struct {
	DB *gorm.DB
}

func NewLevelRequirementController(db *gorm.DB) *LevelRequirementController {
	return &LevelRequirementController{DB: db}
}

// 🟢 GET /api/u/levels
// Level table plus where the caller stands in it.
func (ctrl *LevelRequirementController) GetAll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	levels, err := service.ListLevels(ctrl.DB.WithContext(c.UserContext()))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var totalXP int
	err = ctrl.DB.WithContext(c.UserContext()).
		Model(&progressModel.UserProgress{}).
		Select("user_progress_total_xp").
		Where("user_progress_user_id = ?", userID).
		Scan(&totalXP).Error
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	current := service.LevelForPoints(levels, totalXP)
	includes := fiber.Map{"current_level": current, "total_xp": totalXP}
	if next := service.NextLevel(levels, current); next != nil {
		includes["next_level"] = next.LevelReqLevel
		includes["xp_to_next"] = next.LevelReqMinPoints - totalXP
	}

	return helper.JsonListEx(c, "Níveis carregados", dto.ToLevelResponseList(levels), nil, includes)
}

// 🟡 POST /api/a/levels
func (ctrl *LevelRequirementController) Create(c *fiber.Ctx) error {
	var req dto.LevelRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Nível criado", dto.ToLevelResponse(m))
}

// 🟠 PUT /api/a/levels/:id
func (ctrl *LevelRequirementController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.LevelRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	var existing model.LevelRequirement
	if err := ctrl.DB.WithContext(c.UserContext()).First(&existing, "level_req_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nível não encontrado")
		}
		return helper.FromFiberError(c, err)
	}

	updated := req.ToModel()
	updated.LevelReqID = existing.LevelReqID
	updated.CreatedAt = existing.CreatedAt
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&updated).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Nível atualizado", dto.ToLevelResponse(updated))
}

// 🔴 DELETE /api/a/levels/:id
func (ctrl *LevelRequirementController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.LevelRequirement{}, "level_req_id = ?", id)
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Nível não encontrado")
	}
	return helper.JsonDeleted(c, "Nível removido", nil)
}
