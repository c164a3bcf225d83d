package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/progress/badges/dto"
	"capacitajun_backend/internals/features/progress/badges/model"
	"capacitajun_backend/internals/features/progress/badges/service"
	helper "capacitajun_backend/internals/helpers"
)

type BadgeController struct {
	DB *gorm.DB
}

func NewBadgeController(db *gorm.DB) *BadgeController {
	return &BadgeController{DB: db}
}

// 🟢 GET /api/u/badges
func (ctrl *BadgeController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := service.ListWithEarned(c.UserContext(), ctrl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	earned := 0
	for _, r := range rows {
		if r.AwardedAt != nil {
			earned++
		}
	}
	return helper.JsonListEx(c, "Badges carregados", dto.ToBadgeRowResponses(rows), nil,
		fiber.Map{"earned": earned, "total": len(rows)})
}

/* =========================
   ADMIN
========================= */

// 🟢 GET /api/a/badges
func (ctrl *BadgeController) List(c *fiber.Ctx) error {
	var rows []model.BadgeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("badge_criteria ASC, badge_threshold ASC").
		Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]dto.BadgeResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToBadgeResponse(m))
	}
	return helper.JsonList(c, "Badges carregados", out, nil)
}

// 🟡 POST /api/a/badges
func (ctrl *BadgeController) Create(c *fiber.Ctx) error {
	var req dto.BadgeRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	var m model.BadgeModel
	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Código de badge já existe")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Badge criado", dto.ToBadgeResponse(m))
}

// 🟠 PUT /api/a/badges/:id
func (ctrl *BadgeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.BadgeRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	var m model.BadgeModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "badge_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Badge não encontrado")
		}
		return helper.FromFiberError(c, err)
	}

	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Badge atualizado", dto.ToBadgeResponse(m))
}

// 🔴 DELETE /api/a/badges/:id
// Awards cascade in the database.
func (ctrl *BadgeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.BadgeModel{}, "badge_id = ?", id)
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Badge não encontrado")
	}
	return helper.JsonDeleted(c, "Badge removido", nil)
}
