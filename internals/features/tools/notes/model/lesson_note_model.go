package model

import (
	"time"

	"github.com/google/uuid"
)

type LessonNoteModel struct {
	LessonNoteID       uuid.UUID `gorm:"column:lesson_note_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"lesson_note_id"`
	LessonNoteUserID   uuid.UUID `gorm:"column:lesson_note_user_id;type:uuid;not null;uniqueIndex:uq_lesson_note_user_lesson" json:"lesson_note_user_id"`
	LessonNoteLessonID uuid.UUID `gorm:"column:lesson_note_lesson_id;type:uuid;not null;uniqueIndex:uq_lesson_note_user_lesson" json:"lesson_note_lesson_id"`
	LessonNoteContent  string    `gorm:"column:lesson_note_content;type:text;not null" json:"lesson_note_content"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LessonNoteModel) TableName() string {
	return "lesson_notes"
}
