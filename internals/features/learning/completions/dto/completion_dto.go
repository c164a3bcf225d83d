package dto

import (
	"time"

	"github.com/google/uuid"

	"capacitajun_backend/internals/features/learning/completions/model"
	quizDto "capacitajun_backend/internals/features/learning/quizzes/dto"
	progressDto "capacitajun_backend/internals/features/progress/progress/dto"
)

type SubmitRequest struct {
	Answers []quizDto.Answer `json:"answers" validate:"dive"`
}

type CompletionResponse struct {
	ID          uuid.UUID `json:"id"`
	LessonID    uuid.UUID `json:"lesson_id"`
	Score       float64   `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// CompletionRow is a completion joined with its lesson title for the learner history.
type CompletionRow struct {
	LessonCompletionID          uuid.UUID `gorm:"column:lesson_completion_id" json:"id"`
	LessonCompletionLessonID    uuid.UUID `gorm:"column:lesson_completion_lesson_id" json:"lesson_id"`
	LessonTitle                 string    `gorm:"column:lesson_title" json:"lesson_title"`
	LessonCompletionScore       float64   `gorm:"column:lesson_completion_score" json:"score"`
	LessonCompletionCompletedAt time.Time `gorm:"column:lesson_completion_completed_at" json:"completed_at"`
}

// SubmitResponse is the outcome of a submission. Completion and Gamification are
// set only when the attempt passed.
type SubmitResponse struct {
	Result       quizDto.ValidationResult       `json:"result"`
	Completion   *CompletionResponse            `json:"completion,omitempty"`
	Gamification *progressDto.GamificationDelta `json:"gamification,omitempty"`
	NextLessonID *uuid.UUID                     `json:"next_lesson_id,omitempty"`
}

func ToCompletionResponse(m model.LessonCompletionModel) CompletionResponse {
	return CompletionResponse{
		ID:          m.LessonCompletionID,
		LessonID:    m.LessonCompletionLessonID,
		Score:       m.LessonCompletionScore,
		CompletedAt: m.LessonCompletionCompletedAt,
	}
}
