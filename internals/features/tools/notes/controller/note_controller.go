package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonService "capacitajun_backend/internals/features/learning/lessons/service"
	"capacitajun_backend/internals/features/tools/notes/dto"
	"capacitajun_backend/internals/features/tools/notes/service"
	helper "capacitajun_backend/internals/helpers"
)

type NoteController struct {
	DB *gorm.DB
}

func NewNoteController(db *gorm.DB) *NoteController {
	return &NoteController{DB: db}
}

// 🟢 GET /api/u/notes
func (ctrl *NoteController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := service.List(c.UserContext(), ctrl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Anotações carregadas", rows)
}

// 🟢 GET /api/u/lessons/:id/note
func (ctrl *NoteController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := service.Get(c.UserContext(), ctrl.DB, userID, lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "Nenhuma anotação", nil)
	}
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Anotação carregada", dto.ToNoteResponse(m))
}

// 🟠 PUT /api/u/lessons/:id/note
func (ctrl *NoteController) Put(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpsertNoteRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Anotação vazia")
	}

	if _, err := lessonService.GetLesson(c.UserContext(), ctrl.DB, lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lição não encontrada")
		}
		return helper.FromFiberError(c, err)
	}

	m, err := service.Upsert(c.UserContext(), ctrl.DB, userID, lessonID, content)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Anotação salva", dto.ToNoteResponse(m))
}

// 🔴 DELETE /api/u/lessons/:id/note
func (ctrl *NoteController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ok, err := service.Delete(c.UserContext(), ctrl.DB, userID, lessonID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Anotação não encontrada")
	}
	return helper.JsonDeleted(c, "Anotação removida", nil)
}
