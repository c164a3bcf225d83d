package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/questions/model"
)

func ListByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) ([]model.QuestionModel, error) {
	var rows []model.QuestionModel
	err := db.WithContext(ctx).
		Where("question_lesson_id = ?", lessonID).
		Order("question_order_index ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

// IDsByLesson returns only the ids, for answer-set coverage checks.
func IDsByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("question_lesson_id = ?", lessonID).
		Order("question_order_index ASC").
		Pluck("question_id", &ids).Error
	return ids, err
}

func CountByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.QuestionModel{}).Where("question_lesson_id = ?", lessonID).Count(&n).Error
	return n, err
}

// NextOrderIndex is one past the highest order index in the lesson.
func NextOrderIndex(tx *gorm.DB, lessonID uuid.UUID) (int, error) {
	var max *int
	err := tx.Model(&model.QuestionModel{}).
		Select("MAX(question_order_index)").
		Where("question_lesson_id = ?", lessonID).
		Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max + 1, nil
}
