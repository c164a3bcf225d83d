package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/tools/shared_links/dto"
	"capacitajun_backend/internals/features/tools/shared_links/model"
	helper "capacitajun_backend/internals/helpers"
)

type SharedLinkController struct {
	DB *gorm.DB
}

func NewSharedLinkController(db *gorm.DB) *SharedLinkController {
	return &SharedLinkController{DB: db}
}

// 🌐 GET /api/public/links?category=&q=
func (ctrl *SharedLinkController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.SharedLinkModel{})
	if cat := strings.ToLower(strings.TrimSpace(c.Query("category"))); cat != "" {
		q = q.Where("shared_link_category = ?", cat)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("(shared_link_title ILIKE ? OR shared_link_description ILIKE ?)", like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []model.SharedLinkModel
	if err := q.Order("shared_link_category ASC, created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Links úteis", dto.ToLinkResponses(rows), p.Pagination(total))
}

// 🟡 POST /api/a/links
func (ctrl *SharedLinkController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.LinkRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	m := model.SharedLinkModel{SharedLinkCreatedBy: userID}
	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Link criado", dto.ToLinkResponse(m))
}

// 🟠 PUT /api/a/links/:id
func (ctrl *SharedLinkController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.LinkRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	db := ctrl.DB.WithContext(c.UserContext())
	var m model.SharedLinkModel
	if err := db.Where("shared_link_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Link não encontrado")
		}
		return helper.FromFiberError(c, err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Link atualizado", dto.ToLinkResponse(m))
}

// 🔴 DELETE /api/a/links/:id
func (ctrl *SharedLinkController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.SharedLinkModel{}, "shared_link_id = ?", id)
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Link não encontrado")
	}
	return helper.JsonDeleted(c, "Link removido", nil)
}
