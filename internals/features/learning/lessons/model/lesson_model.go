package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonModel struct {
	LessonID              uuid.UUID      `gorm:"column:lesson_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"lesson_id"`
	LessonCategoryID      uuid.UUID      `gorm:"column:lesson_category_id;type:uuid;not null;index" json:"lesson_category_id"`
	LessonTitle           string         `gorm:"column:lesson_title;type:varchar(200);not null" json:"lesson_title"`
	LessonDescription     string         `gorm:"column:lesson_description;type:text" json:"lesson_description"`
	LessonVideoURL        *string        `gorm:"column:lesson_video_url;type:text" json:"lesson_video_url,omitempty"`
	LessonExternalURL     *string        `gorm:"column:lesson_external_url;type:text" json:"lesson_external_url,omitempty"`
	LessonOrderIndex      int            `gorm:"column:lesson_order_index;not null;default:0" json:"lesson_order_index"`
	LessonDurationMinutes int            `gorm:"column:lesson_duration_minutes;not null;default:0" json:"lesson_duration_minutes"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
