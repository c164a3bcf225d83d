package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/categories/dto"
	"capacitajun_backend/internals/features/learning/categories/model"
	"capacitajun_backend/internals/features/learning/categories/service"
	helper "capacitajun_backend/internals/helpers"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// 🟢 GET /api/u/categories
func (ctrl *CategoryController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := service.ProgressByCategory(c.UserContext(), ctrl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Trilhas carregadas", rows)
}

/* =========================
   ADMIN
========================= */

// 🟡 POST /api/a/categories
func (ctrl *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	slug, err := service.UniqueSlug(c.UserContext(), ctrl.DB, req.Name, nil)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m := model.CategoryModel{
		CategoryName:        req.Name,
		CategorySlug:        slug,
		CategoryDescription: req.Description,
		CategoryIcon:        req.Icon,
		CategoryOrderIndex:  req.OrderIndex,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Trilha criada", dto.ToCategoryResponse(m))
}

// 🟠 PUT /api/a/categories/:id
func (ctrl *CategoryController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateCategoryRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	m, err := service.GetCategory(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trilha não encontrada")
		}
		return helper.FromFiberError(c, err)
	}

	renamed := req.Name != nil && *req.Name != m.CategoryName
	req.Apply(&m)
	if renamed {
		slug, err := service.UniqueSlug(c.UserContext(), ctrl.DB, m.CategoryName, &m.CategoryID)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		m.CategorySlug = slug
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Trilha atualizada", dto.ToCategoryResponse(m))
}

// 🔴 DELETE /api/a/categories/:id
func (ctrl *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var lessons int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("lessons").
		Where("lesson_category_id = ? AND deleted_at IS NULL", id).
		Count(&lessons).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	if lessons > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Remova as lições da trilha antes de excluí-la")
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.CategoryModel{}, "category_id = ?", id)
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Trilha não encontrada")
	}
	return helper.JsonDeleted(c, "Trilha removida", nil)
}
