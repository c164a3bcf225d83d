package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"capacitajun_backend/internals/features/tools/notes/dto"
	"capacitajun_backend/internals/features/tools/notes/model"
)

func List(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]dto.NoteRow, error) {
	rows := []dto.NoteRow{}
	err := db.WithContext(ctx).
		Table("lesson_notes AS n").
		Select("n.lesson_note_lesson_id, l.lesson_title, n.lesson_note_content, n.updated_at").
		Joins("JOIN lessons l ON l.lesson_id = n.lesson_note_lesson_id AND l.deleted_at IS NULL").
		Where("n.lesson_note_user_id = ?", userID).
		Order("n.updated_at DESC").
		Scan(&rows).Error
	return rows, err
}

func Get(ctx context.Context, db *gorm.DB, userID, lessonID uuid.UUID) (model.LessonNoteModel, error) {
	var m model.LessonNoteModel
	err := db.WithContext(ctx).
		Where("lesson_note_user_id = ? AND lesson_note_lesson_id = ?", userID, lessonID).
		Take(&m).Error
	return m, err
}

// Upsert keeps a single note per (user, lesson).
func Upsert(ctx context.Context, db *gorm.DB, userID, lessonID uuid.UUID, content string) (model.LessonNoteModel, error) {
	m := model.LessonNoteModel{
		LessonNoteUserID:   userID,
		LessonNoteLessonID: lessonID,
		LessonNoteContent:  content,
		UpdatedAt:          time.Now(),
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lesson_note_user_id"}, {Name: "lesson_note_lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"lesson_note_content", "updated_at"}),
	}).Create(&m).Error
	return m, err
}

func Delete(ctx context.Context, db *gorm.DB, userID, lessonID uuid.UUID) (bool, error) {
	res := db.WithContext(ctx).
		Where("lesson_note_user_id = ? AND lesson_note_lesson_id = ?", userID, lessonID).
		Delete(&model.LessonNoteModel{})
	return res.RowsAffected > 0, res.Error
}
