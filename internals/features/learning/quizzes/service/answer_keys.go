package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	questionModel "capacitajun_backend/internals/features/learning/questions/model"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrStoreUnavailable = errors.New("answer key store unavailable")
)

// AnswerKey is the server-side truth for one question.
type AnswerKey struct {
	LessonID     uuid.UUID
	CorrectIndex int
}

// AnswerKeyLookup fetches one answer key. Implementations must be safe for concurrent use.
type AnswerKeyLookup interface {
	AnswerKey(ctx context.Context, questionID uuid.UUID) (AnswerKey, error)
}

// GormAnswerKeys reads answer keys straight from the questions table.
type GormAnswerKeys struct {
	DB *gorm.DB
}

func NewGormAnswerKeys(db *gorm.DB) *GormAnswerKeys {
	return &GormAnswerKeys{DB: db}
}

func (g *GormAnswerKeys) AnswerKey(ctx context.Context, questionID uuid.UUID) (AnswerKey, error) {
	var row questionModel.QuestionModel
	err := g.DB.WithContext(ctx).
		Select("question_id", "question_lesson_id", "question_correct_index").
		Where("question_id = ?", questionID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AnswerKey{}, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}
	if err != nil {
		return AnswerKey{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return AnswerKey{LessonID: row.QuestionLessonID, CorrectIndex: row.QuestionCorrectIndex}, nil
}
