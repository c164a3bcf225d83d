package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/community/mentorship/dto"
	"capacitajun_backend/internals/features/community/mentorship/model"
	"capacitajun_backend/internals/features/community/mentorship/service"
	helper "capacitajun_backend/internals/helpers"
)

type MentorshipController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewMentorshipController(db *gorm.DB) *MentorshipController {
	return &MentorshipController{DB: db, Now: time.Now}
}

func respond(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Pedido de mentoria não encontrado")
	case errors.Is(err, service.ErrMentorNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Mentor não encontrado")
	case errors.Is(err, service.ErrSelfMentorship):
		return helper.JsonError(c, fiber.StatusBadRequest, "Você não pode pedir mentoria a si mesmo")
	case errors.Is(err, service.ErrDuplicatePending):
		return helper.JsonError(c, fiber.StatusConflict, "Já existe um pedido pendente para este mentor")
	case errors.Is(err, service.ErrNotPending):
		return helper.JsonError(c, fiber.StatusConflict, "Este pedido já foi respondido")
	case errors.Is(err, service.ErrNotParty):
		return helper.JsonError(c, fiber.StatusForbidden, "Você não pode alterar este pedido")
	default:
		return helper.FromFiberError(c, err)
	}
}

// 🧑‍🏫 GET /api/u/mentors?q=
func (ctrl *MentorshipController) Mentors(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ParseFiber(c, "profile_full_name", "asc", helper.DefaultOpts)
	rows, total, err := service.ListMentors(c.UserContext(), ctrl.DB, userID, c.Query("q"), p.Limit(), p.Offset())
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonList(c, "Mentores disponíveis", rows, p.Pagination(total))
}

// 📄 GET /api/u/mentorship?as=mentee|mentor&status=
func (ctrl *MentorshipController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	as := c.Query("as")
	if as != "" && as != "mentee" && as != "mentor" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parâmetro 'as' deve ser mentee ou mentor")
	}
	status := c.Query("status")
	switch status {
	case "", model.StatusPending, model.StatusAccepted, model.StatusDeclined, model.StatusCancelled:
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Status inválido")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	rows, total, err := service.List(c.UserContext(), ctrl.DB, userID, as, status, p.Limit(), p.Offset())
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonList(c, "Pedidos de mentoria", rows, p.Pagination(total))
}

// 🟡 POST /api/u/mentorship
func (ctrl *MentorshipController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CreateRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	r, err := service.Create(c.UserContext(), ctrl.DB, userID, helper.GetUserName(c), req)
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonCreated(c, "Pedido de mentoria enviado", r)
}

func (ctrl *MentorshipController) act(a service.Action, msg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		id, err := helper.ParseUUIDParam(c, "id")
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		r, err := service.Respond(c.UserContext(), ctrl.DB, userID, id, a, ctrl.Now())
		if err != nil {
			return respond(c, err)
		}
		return helper.JsonUpdated(c, msg, r)
	}
}

// ✅ PATCH /api/u/mentorship/:id/accept (mentor)
func (ctrl *MentorshipController) Accept() fiber.Handler {
	return ctrl.act(service.ActionAccept, "Mentoria aceita")
}

// ❌ PATCH /api/u/mentorship/:id/decline (mentor)
func (ctrl *MentorshipController) Decline() fiber.Handler {
	return ctrl.act(service.ActionDecline, "Mentoria recusada")
}

// 🚫 PATCH /api/u/mentorship/:id/cancel (mentee)
func (ctrl *MentorshipController) Cancel() fiber.Handler {
	return ctrl.act(service.ActionCancel, "Pedido cancelado")
}
