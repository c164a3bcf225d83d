package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/notifications/dto"
	"capacitajun_backend/internals/features/notifications/service"
	helper "capacitajun_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/u/notifications?unread=true&page=&per_page=
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	rows, total, err := service.List(c.UserContext(), ctrl.DB, userID, service.ListFilter{
		UnreadOnly: c.QueryBool("unread", false),
		Limit:      p.Limit(),
		Offset:     p.Offset(),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	unread, err := service.UnreadCount(c.UserContext(), ctrl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonListEx(c, "Notificações carregadas", dto.ToNotificationResponseList(rows),
		p.Pagination(total), fiber.Map{"unread_count": unread})
}

// 🟠 PATCH /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ok, err := service.MarkRead(c.UserContext(), ctrl.DB, userID, id, time.Now())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Notificação não encontrada")
	}
	return helper.JsonUpdated(c, "Notificação marcada como lida", nil)
}

// 🟡 POST /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	n, err := service.MarkAllRead(c.UserContext(), ctrl.DB, userID, time.Now())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Todas as notificações foram lidas", fiber.Map{"updated": n})
}

// 🔴 DELETE /api/u/notifications/:id
func (ctrl *NotificationController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ok, err := service.Delete(c.UserContext(), ctrl.DB, userID, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Notificação não encontrada")
	}
	return helper.JsonDeleted(c, "Notificação removida", nil)
}
