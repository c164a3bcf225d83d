package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AIGenerationModel struct {
	AIGenerationID         uuid.UUID      `gorm:"column:ai_generation_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"ai_generation_id"`
	AIGenerationUserID     uuid.UUID      `gorm:"column:ai_generation_user_id;type:uuid;not null;index" json:"ai_generation_user_id"`
	AIGenerationKind       string         `gorm:"column:ai_generation_kind;type:varchar(20);not null" json:"ai_generation_kind"` // flashcards|summary|mindmap
	AIGenerationInputChars int            `gorm:"column:ai_generation_input_chars;not null" json:"ai_generation_input_chars"`
	AIGenerationResult     datatypes.JSON `gorm:"column:ai_generation_result;type:jsonb;not null" json:"ai_generation_result"`
	CreatedAt              time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AIGenerationModel) TableName() string {
	return "ai_generations"
}
