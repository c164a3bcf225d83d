package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/community/forums/dto"
	"capacitajun_backend/internals/features/community/forums/service"
	helper "capacitajun_backend/internals/helpers"
)

type ForumController struct {
	DB *gorm.DB
}

func NewForumController(db *gorm.DB) *ForumController {
	return &ForumController{DB: db}
}

func respond(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Tópico não encontrado")
	case errors.Is(err, service.ErrReplyNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Resposta não encontrada")
	case errors.Is(err, service.ErrNotAuthor):
		return helper.JsonError(c, fiber.StatusForbidden, "Apenas o autor pode alterar este conteúdo")
	default:
		return helper.FromFiberError(c, err)
	}
}

/* =========================================
   POSTS
========================================= */

// 📄 GET /api/u/forum/posts?tag=&q=
func (ctrl *ForumController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	f := service.ListFilter{Tag: c.Query("tag"), Query: c.Query("q")}

	rows, total, err := service.ListPosts(c.UserContext(), ctrl.DB, f, p.Limit(), p.Offset())
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonList(c, "Tópicos do fórum", rows, p.Pagination(total))
}

// 🔍 GET /api/u/forum/posts/:id
func (ctrl *ForumController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	post, err := service.GetPost(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonOK(c, "Tópico", post)
}

// 🟡 POST /api/u/forum/posts
func (ctrl *ForumController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.PostRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	post, err := service.CreatePost(c.UserContext(), ctrl.DB, userID, req)
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonCreated(c, "Tópico publicado", post)
}

// 🟠 PUT /api/u/forum/posts/:id
func (ctrl *ForumController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.PostRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	post, err := service.UpdatePost(c.UserContext(), ctrl.DB, userID, id, req)
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonUpdated(c, "Tópico atualizado", post)
}

// 🔴 DELETE /api/u/forum/posts/:id (author) and /api/a/forum/posts/:id (admin)
func (ctrl *ForumController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	isAdmin := helper.GetUserRole(c) == constants.RoleAdmin
	if err := service.DeletePost(c.UserContext(), ctrl.DB, userID, isAdmin, id); err != nil {
		return respond(c, err)
	}
	return helper.JsonDeleted(c, "Tópico removido", nil)
}

// 📌 PATCH /api/a/forum/posts/:id/pin
func (ctrl *ForumController) Pin(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.PinRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := service.SetPinned(c.UserContext(), ctrl.DB, id, req.Pinned); err != nil {
		return respond(c, err)
	}
	return helper.JsonUpdated(c, "Tópico atualizado", fiber.Map{"id": id, "pinned": req.Pinned})
}

/* =========================================
   REPLIES
========================================= */

// 💬 POST /api/u/forum/posts/:id/replies
func (ctrl *ForumController) Reply(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.ReplyRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	reply, err := service.CreateReply(c.UserContext(), ctrl.DB, userID, id, req.Content)
	if err != nil {
		return respond(c, err)
	}
	return helper.JsonCreated(c, "Resposta publicada", reply)
}

// 🔴 DELETE /api/u/forum/replies/:id
func (ctrl *ForumController) DeleteReply(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	isAdmin := helper.GetUserRole(c) == constants.RoleAdmin
	if err := service.DeleteReply(c.UserContext(), ctrl.DB, userID, isAdmin, id); err != nil {
		return respond(c, err)
	}
	return helper.JsonDeleted(c, "Resposta removida", nil)
}
