package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/lessons/dto"
	"capacitajun_backend/internals/features/learning/lessons/model"
	"capacitajun_backend/internals/features/learning/lessons/service"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
)

/* =========================
   ADMIN
========================= */

// 🟡 POST /api/a/lessons
func (ctrl *LessonController) Create(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Trilha inexistente")
		}
		return helper.FromFiberError(c, err)
	}

	service.Reindex(c.UserContext(), ctrl.DB, m)
	logger.Log.WithField("lesson_id", m.LessonID).Info("lesson created")
	return helper.JsonCreated(c, "Lição criada", dto.ToLessonResponse(m))
}

// 🟠 PUT /api/a/lessons/:id
func (ctrl *LessonController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateLessonRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	m, err := service.GetLesson(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lição não encontrada")
		}
		return helper.FromFiberError(c, err)
	}

	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Trilha inexistente")
		}
		return helper.FromFiberError(c, err)
	}

	service.Reindex(c.UserContext(), ctrl.DB, m)
	return helper.JsonUpdated(c, "Lição atualizada", dto.ToLessonResponse(m))
}

// 🟠 PATCH /api/a/lessons/:id/reorder
func (ctrl *LessonController) Reorder(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ReorderLessonRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.LessonModel{}).
		Where("lesson_id = ?", id).
		Update("lesson_order_index", *req.OrderIndex)
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lição não encontrada")
	}
	return helper.JsonUpdated(c, "Ordem atualizada", fiber.Map{"id": id, "order_index": *req.OrderIndex})
}

// 🔴 DELETE /api/a/lessons/:id
// Soft delete; completions are kept for history.
func (ctrl *LessonController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.LessonModel{}, "lesson_id = ?", id)
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lição não encontrada")
	}

	service.Unindex(c.UserContext(), id)
	return helper.JsonDeleted(c, "Lição removida", nil)
}
