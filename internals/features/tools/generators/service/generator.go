package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/tools/generators/dto"
	"capacitajun_backend/internals/features/tools/generators/model"
)

const MaxContentChars = 20000

const (
	KindFlashcards = "flashcards"
	KindSummary    = "summary"
	KindMindMap    = "mindmap"
)

var (
	ErrEmptyContent   = errors.New("content is empty")
	ErrContentTooLong = errors.New("content exceeds the character limit")
	ErrBadOutput      = errors.New("ai returned an unexpected format")
)

const (
	promptFlashcards = `Você cria flashcards de estudo para treinamentos corporativos.
Responda SOMENTE com um array JSON no formato [{"front": "pergunta", "back": "resposta"}], entre 5 e 15 itens, em português.`
	promptSummary = `Você resume materiais de treinamento corporativo em português.
Responda com um resumo objetivo em tópicos curtos, sem introdução.`
	promptMindMap = `Você organiza conteúdos em mapas mentais.
Responda SOMENTE com JSON no formato {"root": "tema central", "children": [{"label": "tópico", "children": [{"label": "subtópico"}]}]}, em português, no máximo 3 níveis.`
)

// CheckContent enforces the input rules shared by every generator.
func CheckContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentChars {
		return "", ErrContentTooLong
	}
	return content, nil
}

type Generator struct {
	Gateway Gateway
}

func (g *Generator) Flashcards(ctx context.Context, content string) ([]dto.Flashcard, error) {
	raw, err := g.Gateway.Complete(ctx, promptFlashcards, content)
	if err != nil {
		return nil, err
	}
	var cards []dto.Flashcard
	if err := sonic.UnmarshalString(extractJSON(raw), &cards); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadOutput, err)
	}
	out := cards[:0]
	for _, c := range cards {
		c.Front, c.Back = strings.TrimSpace(c.Front), strings.TrimSpace(c.Back)
		if c.Front != "" && c.Back != "" {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, ErrBadOutput
	}
	return out, nil
}

func (g *Generator) Summary(ctx context.Context, content string) (dto.SummaryResult, error) {
	raw, err := g.Gateway.Complete(ctx, promptSummary, content)
	if err != nil {
		return dto.SummaryResult{}, err
	}
	if raw == "" {
		return dto.SummaryResult{}, ErrBadOutput
	}
	return dto.SummaryResult{Summary: raw}, nil
}

func (g *Generator) MindMap(ctx context.Context, content string) (dto.MindMapNode, error) {
	raw, err := g.Gateway.Complete(ctx, promptMindMap, content)
	if err != nil {
		return dto.MindMapNode{}, err
	}
	var node dto.MindMapNode
	if err := sonic.UnmarshalString(extractJSON(raw), &node); err != nil {
		return dto.MindMapNode{}, fmt.Errorf("%w: %v", ErrBadOutput, err)
	}
	if strings.TrimSpace(node.Root) == "" {
		return dto.MindMapNode{}, ErrBadOutput
	}
	return node, nil
}

// extractJSON drops markdown fences and any prose around the first JSON value.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return s
	}
	closer := byte('}')
	if s[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(s, closer)
	if end < start {
		return s[start:]
	}
	return s[start : end+1]
}

// Save stores a generation so the learner can reopen it later.
func Save(ctx context.Context, db *gorm.DB, userID uuid.UUID, kind string, inputChars int, result any) (model.AIGenerationModel, error) {
	raw, err := sonic.Marshal(result)
	if err != nil {
		return model.AIGenerationModel{}, err
	}
	m := model.AIGenerationModel{
		AIGenerationUserID:     userID,
		AIGenerationKind:       kind,
		AIGenerationInputChars: inputChars,
		AIGenerationResult:     datatypes.JSON(raw),
	}
	return m, db.WithContext(ctx).Create(&m).Error
}

func History(ctx context.Context, db *gorm.DB, userID uuid.UUID, kind string, limit, offset int) ([]model.AIGenerationModel, int64, error) {
	q := db.WithContext(ctx).Model(&model.AIGenerationModel{}).Where("ai_generation_user_id = ?", userID)
	if kind != "" {
		q = q.Where("ai_generation_kind = ?", kind)
	}
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.AIGenerationModel
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error
	return rows, total, err
}
