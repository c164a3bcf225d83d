package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/tools/cafe/dto"
	"capacitajun_backend/internals/features/tools/cafe/model"
	"capacitajun_backend/internals/features/tools/cafe/service"
	helper "capacitajun_backend/internals/helpers"
)

type CafeController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewCafeController(db *gorm.DB) *CafeController {
	return &CafeController{DB: db, Now: time.Now}
}

/* =========================
   PRESETS
========================= */

// 🟢 GET /api/u/cafe/presets
func (ctrl *CafeController) ListPresets(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := service.VisiblePresets(c.UserContext(), ctrl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Ambientes carregados", dto.ToPresetResponses(rows))
}

// 🟡 POST /api/u/cafe/presets
func (ctrl *CafeController) CreatePreset(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.PresetRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	mix, ok := req.MixJSON()
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cada som pode aparecer apenas uma vez na mixagem")
	}

	m := model.CafePresetModel{
		CafePresetOwnerID:      &userID,
		CafePresetName:         strings.TrimSpace(req.Name),
		CafePresetMix:          mix,
		CafePresetMasterVolume: req.MasterVolume,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Ambiente salvo", dto.ToPresetResponse(m))
}

// 🟠 PUT /api/u/cafe/presets/:id
func (ctrl *CafeController) UpdatePreset(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.PresetRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	mix, ok := req.MixJSON()
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cada som pode aparecer apenas uma vez na mixagem")
	}

	db := ctrl.DB.WithContext(c.UserContext())
	m, err := service.OwnedPreset(db, userID, id)
	if err != nil {
		return presetNotFoundOr(c, err)
	}
	m.CafePresetName = strings.TrimSpace(req.Name)
	m.CafePresetMix = mix
	m.CafePresetMasterVolume = req.MasterVolume
	if err := db.Save(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Ambiente atualizado", dto.ToPresetResponse(m))
}

// 🔴 DELETE /api/u/cafe/presets/:id
func (ctrl *CafeController) DeletePreset(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctrl.DB.WithContext(c.UserContext()).
		Where("cafe_preset_id = ? AND cafe_preset_owner_id = ?", id, userID).
		Delete(&model.CafePresetModel{})
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ambiente não encontrado")
	}
	return helper.JsonDeleted(c, "Ambiente removido", nil)
}

/* =========================
   SESSIONS
========================= */

// ☕ POST /api/u/cafe/sessions
func (ctrl *CafeController) StartSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.StartSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
	}
	m, err := service.StartSession(c.UserContext(), ctrl.DB, userID, req.PresetID, ctrl.Now())
	if err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ambiente não encontrado")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Sessão iniciada", dto.ToSessionResponse(m))
}

// ☕ PATCH /api/u/cafe/sessions/:id/finish
func (ctrl *CafeController) FinishSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := service.FinishSession(c.UserContext(), ctrl.DB, userID, id, ctrl.Now())
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Sessão não encontrada")
	case errors.Is(err, service.ErrAlreadyFinished):
		return helper.JsonError(c, fiber.StatusConflict, "Sessão já finalizada")
	case err != nil:
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Sessão finalizada", dto.ToSessionResponse(m))
}

// 📊 GET /api/u/cafe/sessions/stats
func (ctrl *CafeController) Stats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	s, err := service.SessionStats(c.UserContext(), ctrl.DB, userID, ctrl.Now())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Estatísticas de foco", s)
}

func presetNotFoundOr(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Ambiente não encontrado")
	}
	return helper.FromFiberError(c, err)
}
