package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/learning/lessons/dto"
	"capacitajun_backend/internals/features/learning/lessons/service"
	helper "capacitajun_backend/internals/helpers"
)

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

// 🟢 GET /api/u/categories/:id/lessons
// Ordered lessons with the caller's status for each.
func (ctrl *LessonController) ListByCategory(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	categoryID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ctx := c.UserContext()

	lessons, err := service.ListCategoryLessons(ctx, ctrl.DB, categoryID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ordered := service.IDs(lessons)

	passed, err := service.PassedLessonIDs(ctx, ctrl.DB, userID, ordered)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	counts, err := service.QuestionCounts(ctx, ctrl.DB, ordered)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	statuses := service.Statuses(ordered, passed)
	out := make([]dto.LessonResponse, len(lessons))
	for i, l := range lessons {
		out[i] = dto.ToLessonResponse(l)
		out[i].Status = statuses[i]
		out[i].QuestionCount = counts[l.LessonID]
	}
	return helper.JsonOK(c, "Lições carregadas", out)
}

// 🟢 GET /api/u/lessons/:id
func (ctrl *LessonController) Detail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pos, err := service.Locate(c.UserContext(), ctrl.DB, userID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lição não encontrada")
		}
		return helper.FromFiberError(c, err)
	}
	if pos.Status == constants.LessonStatusLocked {
		return helper.JsonError(c, fiber.StatusForbidden, "Conclua a lição anterior para desbloquear esta")
	}

	counts, err := service.QuestionCounts(c.UserContext(), ctrl.DB, []uuid.UUID{lessonID})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp := dto.ToLessonResponse(pos.Lesson)
	resp.Status = pos.Status
	resp.QuestionCount = counts[lessonID]
	return helper.JsonOK(c, "Lição carregada", fiber.Map{
		"lesson":         resp,
		"next_lesson_id": pos.Next,
	})
}

// 🟢 GET /api/u/lessons/search?q=&limit=
func (ctrl *LessonController) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if len(q) < 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Informe ao menos 2 caracteres para buscar")
	}

	rows, err := service.Search(c.UserContext(), ctrl.DB, q, c.QueryInt("limit", 20))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]dto.LessonResponse, len(rows))
	for i, r := range rows {
		out[i] = dto.ToLessonResponse(r)
	}
	return helper.JsonOK(c, "Resultados da busca", out)
}
