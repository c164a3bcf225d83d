package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/attempts/dto"
	completionController "capacitajun_backend/internals/features/learning/completions/controller"
	completionDto "capacitajun_backend/internals/features/learning/completions/dto"
	completionService "capacitajun_backend/internals/features/learning/completions/service"
	lessonService "capacitajun_backend/internals/features/learning/lessons/service"
	questionDto "capacitajun_backend/internals/features/learning/questions/dto"
	questionModel "capacitajun_backend/internals/features/learning/questions/model"
	questionService "capacitajun_backend/internals/features/learning/questions/service"
	"capacitajun_backend/internals/features/learning/quizzes/session"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
)

type AttemptController struct {
	DB    *gorm.DB
	Store *session.Store
	Gate  *completionService.Gate
}

func NewAttemptController(db *gorm.DB, store *session.Store) *AttemptController {
	return &AttemptController{DB: db, Store: store, Gate: completionService.NewGate(db)}
}

/* =========================
   handlers
========================= */

// 🟢 GET /api/u/lessons/:id/attempt
func (ctrl *AttemptController) Get(c *fiber.Ctx) error {
	userID, lessonID, err := ids(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	st, err := ctrl.Store.Load(c.UserContext(), userID, lessonID)
	if err != nil {
		return ctrl.storeError(c, err)
	}
	return ctrl.view(c, "Tentativa atual", st, nil)
}

// 🟡 POST /api/u/lessons/:id/attempt/start
func (ctrl *AttemptController) Start(c *fiber.Ctx) error {
	userID, lessonID, err := ids(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pos, err := lessonService.Locate(c.UserContext(), ctrl.DB, userID, lessonID)
	if err != nil {
		return completionController.RespondGateError(c, err)
	}
	if !lessonService.CanAttempt(pos.Status) {
		return completionController.RespondGateError(c, completionService.ErrLessonLocked)
	}
	questionIDs, err := questionService.IDsByLesson(c.UserContext(), ctrl.DB, lessonID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return ctrl.transition(c, userID, lessonID, session.Start(questionIDs), "Quiz iniciado")
}

// 🟠 PUT /api/u/lessons/:id/attempt/answer
func (ctrl *AttemptController) Answer(c *fiber.Ctx) error {
	userID, lessonID, err := ids(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.AnswerRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	return ctrl.transition(c, userID, lessonID, session.Select(*req.Answer), "Resposta registrada")
}

// 🟡 POST /api/u/lessons/:id/attempt/next
func (ctrl *AttemptController) Next(c *fiber.Ctx) error {
	userID, lessonID, err := ids(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctrl.transition(c, userID, lessonID, session.Next(), "Próxima pergunta")
}

// 🟡 POST /api/u/lessons/:id/attempt/prev
func (ctrl *AttemptController) Prev(c *fiber.Ctx) error {
	userID, lessonID, err := ids(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctrl.transition(c, userID, lessonID, session.Prev(), "Pergunta anterior")
}

// 🟡 POST /api/u/lessons/:id/attempt/submit
// Grading always goes through the completion gate.
func (ctrl *AttemptController) Submit(c *fiber.Ctx) error {
	userID, lessonID, err := ids(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ctx := c.UserContext()

	st, err := ctrl.Store.Load(ctx, userID, lessonID)
	if err != nil {
		return ctrl.storeError(c, err)
	}
	if err := session.ReadyToSubmit(st); err != nil {
		return transitionError(c, err)
	}

	out, err := ctrl.Gate.Submit(ctx, userID, lessonID, st.AnswerSet())
	if err != nil {
		logger.WithUserID(userID.String()).WithError(err).WithField("lesson_id", lessonID).Warn("attempt submit rejected")
		return completionController.RespondGateError(c, err)
	}

	next, err := session.Apply(st, session.Submit(out.Result))
	if err != nil {
		return transitionError(c, err)
	}
	if err := ctrl.Store.Save(ctx, userID, next); err != nil {
		return ctrl.storeError(c, err)
	}

	msg := "Quase lá! Você precisa de 80% para concluir a lição."
	if out.Result.Passed {
		msg = "Parabéns! Lição concluída."
	}
	return ctrl.view(c, msg, next, &out)
}

// 🟡 POST /api/u/lessons/:id/attempt/retry
func (ctrl *AttemptController) Retry(c *fiber.Ctx) error {
	userID, lessonID, err := ids(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctrl.transition(c, userID, lessonID, session.Retry(), "Nova tentativa")
}

// 🔴 DELETE /api/u/lessons/:id/attempt
func (ctrl *AttemptController) Reset(c *fiber.Ctx) error {
	userID, lessonID, err := ids(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.Store.Delete(c.UserContext(), userID, lessonID); err != nil {
		return ctrl.storeError(c, err)
	}
	return ctrl.view(c, "Tentativa reiniciada", session.New(lessonID), nil)
}

/* =========================
   helpers
========================= */

func (ctrl *AttemptController) transition(c *fiber.Ctx, userID, lessonID uuid.UUID, a session.Action, msg string) error {
	ctx := c.UserContext()
	st, err := ctrl.Store.Load(ctx, userID, lessonID)
	if err != nil {
		return ctrl.storeError(c, err)
	}
	next, err := session.Apply(st, a)
	if err != nil {
		return transitionError(c, err)
	}
	if err := ctrl.Store.Save(ctx, userID, next); err != nil {
		return ctrl.storeError(c, err)
	}
	return ctrl.view(c, msg, next, nil)
}

func (ctrl *AttemptController) view(c *fiber.Ctx, msg string, st session.State, sub *completionDto.SubmitResponse) error {
	v := dto.AttemptView{State: st, Submission: sub}
	if st.Phase == session.PhaseQuiz && st.Index < len(st.QuestionIDs) {
		var q questionModel.QuestionModel
		err := ctrl.DB.WithContext(c.UserContext()).Where("question_id = ?", st.QuestionIDs[st.Index]).Take(&q).Error
		switch {
		case err == nil:
			lq := questionDto.ToLearnerQuestion(q)
			v.Current = &lq
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return helper.FromFiberError(c, err)
		}
	}
	return helper.JsonOK(c, msg, v)
}

func (ctrl *AttemptController) storeError(c *fiber.Ctx, err error) error {
	logger.Log.WithError(err).WithField("path", c.Path()).Error("attempt store failed")
	return helper.JsonError(c, fiber.StatusServiceUnavailable, "Não foi possível acessar a tentativa agora. Tente novamente.")
}

func ids(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, lessonID, nil
}

func transitionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrNoQuestions):
		return helper.JsonError(c, fiber.StatusBadRequest, "Esta lição não tem quiz. Use \"Concluir Lição\".")
	case errors.Is(err, session.ErrInvalidAnswer):
		return helper.JsonError(c, fiber.StatusBadRequest, "Escolha uma das 4 alternativas")
	case errors.Is(err, session.ErrUnanswered):
		return helper.JsonError(c, fiber.StatusConflict, "Selecione uma resposta antes de continuar")
	case errors.Is(err, session.ErrLastQuestion):
		return helper.JsonError(c, fiber.StatusConflict, "Esta é a última pergunta. Envie suas respostas.")
	case errors.Is(err, session.ErrNotLastQuestion):
		return helper.JsonError(c, fiber.StatusConflict, "Responda até a última pergunta antes de enviar")
	case errors.Is(err, session.ErrAlreadyPassed):
		return helper.JsonError(c, fiber.StatusConflict, "Você já foi aprovado nesta tentativa")
	}
	return helper.JsonError(c, fiber.StatusConflict, "Ação indisponível neste momento do quiz")
}
