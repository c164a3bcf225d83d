package model

import (
	"time"

	"github.com/google/uuid"
)

// LessonCompletionModel holds one row per (user, lesson); retries overwrite it.
type LessonCompletionModel struct {
	LessonCompletionID          uuid.UUID `gorm:"column:lesson_completion_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"lesson_completion_id"`
	LessonCompletionUserID      uuid.UUID `gorm:"column:lesson_completion_user_id;type:uuid;not null;uniqueIndex:uq_lesson_completion_user_lesson" json:"lesson_completion_user_id"`
	LessonCompletionLessonID    uuid.UUID `gorm:"column:lesson_completion_lesson_id;type:uuid;not null;uniqueIndex:uq_lesson_completion_user_lesson" json:"lesson_completion_lesson_id"`
	LessonCompletionScore       float64   `gorm:"column:lesson_completion_score;type:numeric(5,2);not null" json:"lesson_completion_score"`
	LessonCompletionCompletedAt time.Time `gorm:"column:lesson_completion_completed_at;not null" json:"lesson_completion_completed_at"`
}

func (LessonCompletionModel) TableName() string {
	return "lesson_completions"
}
