package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuestionModel struct {
	QuestionID           uuid.UUID      `gorm:"column:question_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"question_id"`
	QuestionLessonID     uuid.UUID      `gorm:"column:question_lesson_id;type:uuid;not null;index" json:"question_lesson_id"`
	QuestionText         string         `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOptions      pq.StringArray `gorm:"column:question_options;type:text[];not null" json:"question_options"`
	QuestionCorrectIndex int            `gorm:"column:question_correct_index;not null" json:"question_correct_index"` // 0..3
	QuestionExplanation  *string        `gorm:"column:question_explanation;type:text" json:"question_explanation,omitempty"`
	QuestionOrderIndex   int            `gorm:"column:question_order_index;not null;default:0" json:"question_order_index"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
