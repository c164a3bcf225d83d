package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/constants"
	lessonService "capacitajun_backend/internals/features/learning/lessons/service"
	"capacitajun_backend/internals/features/learning/questions/dto"
	"capacitajun_backend/internals/features/learning/questions/model"
	"capacitajun_backend/internals/features/learning/questions/service"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
)

const maxImportSize = 5 << 20

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// 🟢 GET /api/u/lessons/:id/questions
// Answer keys are never sent to learners.
func (ctrl *QuestionController) ListForLearner(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pos, err := lessonService.Locate(c.UserContext(), ctrl.DB, userID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lição não encontrada")
		}
		return helper.FromFiberError(c, err)
	}
	if pos.Status == constants.LessonStatusLocked {
		return helper.JsonError(c, fiber.StatusForbidden, "Conclua a lição anterior para desbloquear esta")
	}

	rows, err := service.ListByLesson(c.UserContext(), ctrl.DB, lessonID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Perguntas carregadas", dto.ToLearnerQuestions(rows))
}

/* =========================
   ADMIN
========================= */

// 🟢 GET /api/a/lessons/:id/questions
func (ctrl *QuestionController) ListForAdmin(c *fiber.Ctx) error {
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := service.ListByLesson(c.UserContext(), ctrl.DB, lessonID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Perguntas carregadas", dto.ToAdminQuestions(rows))
}

// 🟡 POST /api/a/lessons/:id/questions
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.QuestionModel{QuestionLessonID: lessonID}
	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lição não encontrada")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Pergunta criada", dto.ToAdminQuestion(m))
}

// 🟠 PUT /api/a/questions/:id
func (ctrl *QuestionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.QuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).Where("question_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pergunta não encontrada")
		}
		return helper.FromFiberError(c, err)
	}

	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Pergunta atualizada", dto.ToAdminQuestion(m))
}

// 🔴 DELETE /api/a/questions/:id
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.QuestionModel{}, "question_id = ?", id)
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pergunta não encontrada")
	}
	return helper.JsonDeleted(c, "Pergunta removida", nil)
}

// 🟡 POST /api/a/lessons/:id/questions/import (multipart, field "file")
// Valid rows are inserted together; rejected rows come back with their row number.
func (ctrl *QuestionController) Import(c *fiber.Ctx) error {
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, err := lessonService.GetLesson(c.UserContext(), ctrl.DB, lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lição não encontrada")
		}
		return helper.FromFiberError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Envie a planilha no campo 'file'")
	}
	if fh.Size > maxImportSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Planilha maior que 5MB")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Não foi possível ler a planilha")
	}
	defer f.Close()

	parsed, rowErrs, err := service.ParseQuestionSheet(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Planilha inválida: "+err.Error())
	}

	if err := service.InsertParsed(ctrl.DB.WithContext(c.UserContext()), lessonID, parsed); err != nil {
		return helper.FromFiberError(c, err)
	}

	logger.Log.WithField("lesson_id", lessonID).
		WithField("imported", len(parsed)).
		WithField("rejected", len(rowErrs)).
		Info("questions imported")

	if rowErrs == nil {
		rowErrs = []dto.ImportRowError{}
	}
	return helper.JsonCreated(c, "Importação concluída", dto.ImportResult{Imported: len(parsed), Errors: rowErrs})
}
