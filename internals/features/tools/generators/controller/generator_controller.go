package controller

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/tools/generators/dto"
	"capacitajun_backend/internals/features/tools/generators/service"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
	"capacitajun_backend/internals/helpers/metrics"
)

type GeneratorController struct {
	DB        *gorm.DB
	Generator *service.Generator
}

func NewGeneratorController(db *gorm.DB, gw service.Gateway) *GeneratorController {
	return &GeneratorController{DB: db, Generator: &service.Generator{Gateway: gw}}
}

// 🤖 POST /api/u/ai/flashcards
func (ctrl *GeneratorController) Flashcards(c *fiber.Ctx) error {
	return ctrl.run(c, service.KindFlashcards, "Flashcards gerados", func(ctx context.Context, content string) (any, error) {
		return ctrl.Generator.Flashcards(ctx, content)
	})
}

// 🤖 POST /api/u/ai/summary
func (ctrl *GeneratorController) Summary(c *fiber.Ctx) error {
	return ctrl.run(c, service.KindSummary, "Resumo gerado", func(ctx context.Context, content string) (any, error) {
		return ctrl.Generator.Summary(ctx, content)
	})
}

// 🤖 POST /api/u/ai/mindmap
func (ctrl *GeneratorController) MindMap(c *fiber.Ctx) error {
	return ctrl.run(c, service.KindMindMap, "Mapa mental gerado", func(ctx context.Context, content string) (any, error) {
		return ctrl.Generator.MindMap(ctx, content)
	})
}

// 🟢 GET /api/u/ai/generations?kind=
func (ctrl *GeneratorController) History(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	rows, total, err := service.History(c.UserContext(), ctrl.DB, userID, c.Query("kind"), p.Limit(), p.Offset())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Gerações anteriores", dto.ToGenerationResponses(rows), p.Pagination(total))
}

func (ctrl *GeneratorController) run(c *fiber.Ctx, kind, msg string, gen func(context.Context, string) (any, error)) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	content, err := service.CheckContent(req.Content)
	if err != nil {
		metrics.ObserveAI(kind, "rejected")
		return respond(c, err)
	}

	result, err := gen(c.UserContext(), content)
	if err != nil {
		metrics.ObserveAI(kind, outcome(err))
		logger.WithUserID(userID.String()).WithError(err).WithField("kind", kind).Warn("ai generation failed")
		return respond(c, err)
	}
	metrics.ObserveAI(kind, "ok")

	saved, err := service.Save(c.UserContext(), ctrl.DB, userID, kind, utf8.RuneCountInString(content), result)
	if err != nil {
		// the learner still gets the result
		logger.WithUserID(userID.String()).WithError(err).Error("ai generation not saved")
		return helper.JsonOK(c, msg, fiber.Map{"kind": kind, "result": result})
	}
	return helper.JsonOK(c, msg, fiber.Map{"id": nilIfZero(saved.AIGenerationID), "kind": kind, "result": result})
}

func respond(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyContent):
		return helper.JsonError(c, fiber.StatusBadRequest, "Envie o conteúdo a ser processado")
	case errors.Is(err, service.ErrContentTooLong):
		return helper.JsonError(c, fiber.StatusBadRequest, "Conteúdo muito longo. O limite é de 20.000 caracteres.")
	case errors.Is(err, service.ErrRateLimited):
		return helper.JsonError(c, fiber.StatusTooManyRequests, "Muitas solicitações. Tente novamente em instantes.")
	case errors.Is(err, service.ErrCreditsExhausted):
		return helper.JsonError(c, fiber.StatusPaymentRequired, "Créditos de IA esgotados")
	}
	return helper.JsonError(c, fiber.StatusServiceUnavailable, "Serviço de IA indisponível. Tente novamente mais tarde.")
}

func outcome(err error) string {
	switch {
	case errors.Is(err, service.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, service.ErrCreditsExhausted):
		return "no_credits"
	case errors.Is(err, service.ErrBadOutput):
		return "bad_output"
	}
	return "error"
}

func nilIfZero(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}
