package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/completions/dto"
	"capacitajun_backend/internals/features/learning/completions/service"
	quizController "capacitajun_backend/internals/features/learning/quizzes/controller"
	quizService "capacitajun_backend/internals/features/learning/quizzes/service"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
)

type CompletionController struct {
	DB   *gorm.DB
	Gate *service.Gate
}

func NewCompletionController(db *gorm.DB) *CompletionController {
	return &CompletionController{DB: db, Gate: service.NewGate(db)}
}

// 🟡 POST /api/u/lessons/:id/quiz/submit
func (ctrl *CompletionController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SubmitRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	out, err := ctrl.Gate.Submit(c.UserContext(), userID, lessonID, req.Answers)
	if err != nil {
		logger.WithUserID(userID.String()).WithError(err).WithField("lesson_id", lessonID).Warn("quiz submit rejected")
		return RespondGateError(c, err)
	}
	if !out.Result.Passed {
		return helper.JsonOK(c, "Quase lá! Você precisa de 80% para concluir a lição.", out)
	}
	return helper.JsonOK(c, "Parabéns! Lição concluída.", out)
}

// 🟡 POST /api/u/lessons/:id/complete
// Lessons without a quiz.
func (ctrl *CompletionController) Complete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	out, err := ctrl.Gate.CompleteWithoutQuiz(c.UserContext(), userID, lessonID)
	if err != nil {
		return RespondGateError(c, err)
	}
	return helper.JsonOK(c, "Lição concluída", out)
}

// 🟢 GET /api/u/completions
func (ctrl *CompletionController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ParseFiber(c, "completed_at", "desc", helper.DefaultOpts)

	rows, total, err := service.ListForUser(c.UserContext(), ctrl.DB, userID, p.Limit(), p.Offset())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Lições concluídas", rows, p.Pagination(total))
}

// RespondGateError maps completion gate failures to HTTP.
func RespondGateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Lição não encontrada")
	case errors.Is(err, service.ErrLessonLocked):
		return helper.JsonError(c, fiber.StatusForbidden, "Conclua a lição anterior para desbloquear esta")
	case errors.Is(err, service.ErrIncompleteAnswers):
		return helper.JsonError(c, fiber.StatusBadRequest, "Responda todas as perguntas da lição uma única vez")
	case errors.Is(err, service.ErrNoQuestions):
		return helper.JsonError(c, fiber.StatusBadRequest, "Esta lição não tem quiz. Use \"Concluir Lição\".")
	case errors.Is(err, service.ErrHasQuestions):
		return helper.JsonError(c, fiber.StatusBadRequest, "Esta lição tem quiz. Responda as perguntas para concluir.")
	case errors.Is(err, quizService.ErrQuestionNotFound), errors.Is(err, quizService.ErrStoreUnavailable):
		return quizController.RespondValidationError(c, err)
	}
	return helper.FromFiberError(c, err)
}
