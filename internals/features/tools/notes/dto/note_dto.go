package dto

import (
	"time"

	"github.com/google/uuid"

	"capacitajun_backend/internals/features/tools/notes/model"
)

type UpsertNoteRequest struct {
	Content string `json:"content" validate:"required,max=20000"`
}

type NoteResponse struct {
	LessonID  uuid.UUID `json:"lesson_id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteRow is a note joined with its lesson for the notebook list.
type NoteRow struct {
	LessonNoteLessonID uuid.UUID `gorm:"column:lesson_note_lesson_id" json:"lesson_id"`
	LessonTitle        string    `gorm:"column:lesson_title" json:"lesson_title"`
	LessonNoteContent  string    `gorm:"column:lesson_note_content" json:"content"`
	UpdatedAt          time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func ToNoteResponse(m model.LessonNoteModel) NoteResponse {
	return NoteResponse{LessonID: m.LessonNoteLessonID, Content: m.LessonNoteContent, UpdatedAt: m.UpdatedAt}
}
