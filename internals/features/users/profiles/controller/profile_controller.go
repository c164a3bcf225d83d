package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/users/profiles/dto"
	"capacitajun_backend/internals/features/users/profiles/model"
	"capacitajun_backend/internals/features/users/profiles/service"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// 🟢 GET /api/u/profile
func (pc *ProfileController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	row, err := service.GetProfile(c.UserContext(), pc.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Perfil não encontrado")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Perfil carregado", dto.ToProfileResponse(row))
}

// 🟠 PATCH /api/u/profile
func (pc *ProfileController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateProfileRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	updates := req.Updates()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	res := pc.DB.WithContext(c.UserContext()).
		Model(&model.ProfileModel{}).
		Where("profile_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Perfil não encontrado")
	}

	row, err := service.GetProfile(c.UserContext(), pc.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Perfil atualizado", dto.ToProfileResponse(row))
}

// 🟢 GET /api/a/users?q=&role=&page=&per_page=
func (pc *ProfileController) AdminListUsers(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "profiles.created_at",
		"full_name":  "profiles.profile_full_name",
		"email":      "users.email",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	role := c.Query("role")
	if role != "" && !constants.IsValidRole(role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "role inválido")
	}

	rows, total, err := service.ListProfiles(c.UserContext(), pc.DB, service.ListFilter{
		Query:  c.Query("q"),
		Role:   role,
		Limit:  p.Limit(),
		Offset: p.Offset(),
		Order:  order,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Usuários carregados", dto.ToProfileResponses(rows), p.Pagination(total))
}

// 🟠 PATCH /api/a/users/:id/role
func (pc *ProfileController) AdminUpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateRoleRequest
	return pc.adminUpdate(c, &req, func() map[string]any {
		return map[string]any{"profile_role": req.Role}
	})
}

// 🟠 PATCH /api/a/users/:id/active
func (pc *ProfileController) AdminUpdateActive(c *fiber.Ctx) error {
	var req dto.UpdateActiveRequest
	return pc.adminUpdate(c, &req, func() map[string]any {
		return map[string]any{"profile_is_active": *req.IsActive}
	})
}

// adminUpdate applies a single-column change to another user's profile.
// Admins cannot demote or deactivate themselves.
func (pc *ProfileController) adminUpdate(c *fiber.Ctx, req any, updates func() map[string]any) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	targetID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if ok, err := helper.ParseAndValidate(c, req); !ok {
		return err
	}
	if targetID == adminID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Não é possível alterar a própria conta por aqui")
	}

	res := pc.DB.WithContext(c.UserContext()).
		Model(&model.ProfileModel{}).
		Where("profile_id = ?", targetID).
		Updates(updates())
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	logger.WithUserID(adminID.String()).
		WithField("target_id", targetID.String()).
		WithField("changes", updates()).
		Info("admin updated user")

	row, err := service.GetProfile(c.UserContext(), pc.DB, targetID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Usuário atualizado", dto.ToProfileResponse(row))
}
