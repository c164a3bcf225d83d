package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonService "capacitajun_backend/internals/features/learning/lessons/service"
	"capacitajun_backend/internals/features/learning/quizzes/dto"
	"capacitajun_backend/internals/features/learning/quizzes/service"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
)

// LessonStatusFunc reports a lesson's status for a user.
type LessonStatusFunc func(ctx context.Context, userID, lessonID uuid.UUID) (string, error)

type QuizController struct {
	DB     *gorm.DB
	Keys   service.AnswerKeyLookup
	Status LessonStatusFunc
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{
		DB:   db,
		Keys: service.NewGormAnswerKeys(db),
		Status: func(ctx context.Context, userID, lessonID uuid.UUID) (string, error) {
			pos, err := lessonService.Locate(ctx, db, userID, lessonID)
			return pos.Status, err
		},
	}
}

// 🟡 POST /api/u/quiz/validate
func (ctrl *QuizController) Validate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ValidateRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	if len(req.Answers) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Envie ao menos uma resposta")
	}

	status, err := ctrl.Status(c.UserContext(), userID, req.LessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lição não encontrada")
		}
		logger.WithUserID(userID.String()).WithError(err).WithField("lesson_id", req.LessonID).Warn("lesson lookup failed")
		return RespondValidationError(c, err)
	}
	if !lessonService.CanAttempt(status) {
		return helper.JsonError(c, fiber.StatusForbidden, "Conclua a lição anterior para desbloquear esta")
	}

	res, err := service.Validate(c.UserContext(), ctrl.Keys, req.LessonID, req.Answers)
	if err != nil {
		logger.WithUserID(userID.String()).WithError(err).WithField("lesson_id", req.LessonID).Warn("quiz validation failed")
		return RespondValidationError(c, err)
	}
	return helper.JsonOK(c, "Respostas corrigidas", res)
}

// RespondValidationError maps validator failures: unknown question → 404, anything else → 503.
func RespondValidationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrQuestionNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pergunta não encontrada")
	}
	return helper.JsonError(c, fiber.StatusServiceUnavailable, "Não foi possível corrigir o quiz agora. Tente novamente.")
}
