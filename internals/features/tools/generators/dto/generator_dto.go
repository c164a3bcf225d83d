package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"capacitajun_backend/internals/features/tools/generators/model"
)

type GenerateRequest struct {
	Content string `json:"content"`
}

type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type MindMapNode struct {
	Root     string        `json:"root,omitempty"`
	Label    string        `json:"label,omitempty"`
	Children []MindMapNode `json:"children,omitempty"`
}

type SummaryResult struct {
	Summary string `json:"summary"`
}

type GenerationResponse struct {
	ID         uuid.UUID      `json:"id"`
	Kind       string         `json:"kind"`
	InputChars int            `json:"input_chars"`
	Result     datatypes.JSON `json:"result"`
	CreatedAt  time.Time      `json:"created_at"`
}

func ToGenerationResponse(m model.AIGenerationModel) GenerationResponse {
	return GenerationResponse{
		ID:         m.AIGenerationID,
		Kind:       m.AIGenerationKind,
		InputChars: m.AIGenerationInputChars,
		Result:     m.AIGenerationResult,
		CreatedAt:  m.CreatedAt,
	}
}

func ToGenerationResponses(ms []model.AIGenerationModel) []GenerationResponse {
	out := make([]GenerationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToGenerationResponse(m))
	}
	return out
}
