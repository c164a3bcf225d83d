package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"capacitajun_backend/internals/features/community/groups/dto"
	"capacitajun_backend/internals/features/community/groups/service"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
)

const heartbeatEvery = 25 * time.Second

type GroupController struct {
	Svc *service.Service
}

func NewGroupController(svc *service.Service) *GroupController {
	return &GroupController{Svc: svc}
}

func respond(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Grupo não encontrado")
	case errors.Is(err, service.ErrNotMember):
		return helper.JsonError(c, fiber.StatusForbidden, "Apenas membros do grupo têm acesso")
	case errors.Is(err, service.ErrOwnerCannotLeave):
		return helper.JsonError(c, fiber.StatusConflict, "O criador do grupo não pode sair")
	default:
		return helper.FromFiberError(c, err)
	}
}

// 📄 GET /api/u/groups?q=
func (ctrl *GroupController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	rows, total, err := ctrl.Svc.ListGroups(c.UserContext(), userID, c.Query("q"), p.Limit(), p.Offset())
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonList(c, "Grupos de estudo", rows, p.Pagination(total))
}

// 🟡 POST /api/u/groups
func (ctrl *GroupController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CreateGroupRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	g, err := ctrl.Svc.Create(c.UserContext(), userID, req)
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonCreated(c, "Grupo criado", g)
}

// ➕ POST /api/u/groups/:id/join
func (ctrl *GroupController) Join(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.Svc.Join(c.UserContext(), id, userID); err != nil {
		return respond(c, err)
	}
	return helper.JsonOK(c, "Você entrou no grupo", fiber.Map{"group_id": id})
}

// ➖ POST /api/u/groups/:id/leave
func (ctrl *GroupController) Leave(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.Svc.Leave(c.UserContext(), id, userID); err != nil {
		return respond(c, err)
	}
	return helper.JsonOK(c, "Você saiu do grupo", fiber.Map{"group_id": id})
}

// 💬 GET /api/u/groups/:id/messages?limit=
func (ctrl *GroupController) Messages(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ctrl.Svc.Messages(c.UserContext(), id, userID, c.QueryInt("limit", service.DefaultMessageLimit))
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonOK(c, "Mensagens", rows)
}

// ✉️ POST /api/u/groups/:id/messages
func (ctrl *GroupController) Post(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.MessageRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	row, err := ctrl.Svc.Post(c.UserContext(), id, userID, helper.GetUserName(c), req.Content)
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonCreated(c, "Mensagem enviada", row)
}

// 📡 GET /api/u/groups/:id/stream (text/event-stream)
func (ctrl *GroupController) Stream(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.Svc.RequireMember(c.UserContext(), id, userID); err != nil {
		return respond(c, err)
	}

	// the fiber context is recycled once the handler returns
	ctx, stop := context.WithCancel(context.Background())
	msgs, cancel, err := ctrl.Svc.Broker.Subscribe(ctx, service.Channel(id))
	if err != nil {
		stop()
		logger.Log.WithError(err).Error("group stream subscribe failed")
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Canal em tempo real indisponível")
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	log := logger.WithUserID(userID.String()).WithField("group_id", id)
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer stop()
		defer cancel()

		ticker := time.NewTicker(heartbeatEvery)
		defer ticker.Stop()

		if _, err := fmt.Fprint(w, "retry: 3000\n: connected\n\n"); err != nil || w.Flush() != nil {
			return
		}
		for {
			select {
			case payload, ok := <-msgs:
				if !ok {
					return
				}
				if err := WriteEvent(w, "message", payload); err != nil {
					log.WithError(err).Debug("group stream closed")
					return
				}
			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil || w.Flush() != nil {
					return
				}
			}
		}
	}))
	return nil
}

// WriteEvent writes one SSE frame and flushes it.
func WriteEvent(w *bufio.Writer, event string, data []byte) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}
