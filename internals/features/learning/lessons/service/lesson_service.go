package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/learning/lessons/model"
	"capacitajun_backend/internals/helpers/logger"
	"capacitajun_backend/internals/helpers/search"
)

func GetLesson(ctx context.Context, db *gorm.DB, id uuid.UUID) (model.LessonModel, error) {
	var m model.LessonModel
	err := db.WithContext(ctx).Where("lesson_id = ?", id).Take(&m).Error
	return m, err
}

// ListCategoryLessons returns live lessons of a category in display order.
func ListCategoryLessons(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) ([]model.LessonModel, error) {
	var rows []model.LessonModel
	err := db.WithContext(ctx).
		Where("lesson_category_id = ?", categoryID).
		Order("lesson_order_index ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func IDs(lessons []model.LessonModel) []uuid.UUID {
	ids := make([]uuid.UUID, len(lessons))
	for i, l := range lessons {
		ids[i] = l.LessonID
	}
	return ids
}

// PassedLessonIDs loads, in one query, which of lessonIDs the user passed.
func PassedLessonIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, lessonIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	passed := make(map[uuid.UUID]bool, len(lessonIDs))
	if len(lessonIDs) == 0 {
		return passed, nil
	}

	var ids []uuid.UUID
	err := db.WithContext(ctx).
		Table("lesson_completions").
		Where("lesson_completion_user_id = ? AND lesson_completion_lesson_id IN ? AND lesson_completion_score >= ?",
			userID, lessonIDs, constants.PassingScore).
		Pluck("lesson_completion_lesson_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		passed[id] = true
	}
	return passed, nil
}

// QuestionCounts counts questions per lesson in one grouped query.
func QuestionCounts(ctx context.Context, db *gorm.DB, lessonIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(lessonIDs))
	if len(lessonIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		LessonID uuid.UUID `gorm:"column:lesson_id"`
		Total    int       `gorm:"column:total"`
	}
	err := db.WithContext(ctx).
		Table("questions").
		Select("question_lesson_id AS lesson_id, COUNT(*) AS total").
		Where("question_lesson_id IN ? AND deleted_at IS NULL", lessonIDs).
		Group("question_lesson_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.LessonID] = r.Total
	}
	return counts, nil
}

// Position is where a lesson stands for a user.
type Position struct {
	Lesson model.LessonModel
	Status string
	Next   *uuid.UUID
}

// Locate loads a lesson and computes its status from the category order and the user's passes.
func Locate(ctx context.Context, db *gorm.DB, userID, lessonID uuid.UUID) (Position, error) {
	lesson, err := GetLesson(ctx, db, lessonID)
	if err != nil {
		return Position{}, err
	}
	siblings, err := ListCategoryLessons(ctx, db, lesson.LessonCategoryID)
	if err != nil {
		return Position{}, err
	}
	ordered := IDs(siblings)
	passed, err := PassedLessonIDs(ctx, db, userID, ordered)
	if err != nil {
		return Position{}, err
	}
	return Position{
		Lesson: lesson,
		Status: StatusOf(ordered, passed, lessonID),
		Next:   NextAfter(ordered, lessonID),
	}, nil
}

/* =========================
   SEARCH
========================= */

// Search uses the Elasticsearch index when configured and falls back to ILIKE.
func Search(ctx context.Context, db *gorm.DB, q string, limit int) ([]model.LessonModel, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []model.LessonModel{}, nil
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	if idx := search.Lessons; idx != nil {
		ids, err := idx.Search(ctx, q, limit)
		if err == nil {
			return loadInOrder(ctx, db, ids)
		}
		logger.Log.WithError(err).Warn("lesson search index unavailable, using sql")
	}

	like := "%" + q + "%"
	var rows []model.LessonModel
	err := db.WithContext(ctx).
		Where("lesson_title ILIKE ? OR lesson_description ILIKE ?", like, like).
		Order("lesson_title ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func loadInOrder(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]model.LessonModel, error) {
	if len(ids) == 0 {
		return []model.LessonModel{}, nil
	}
	var rows []model.LessonModel
	if err := db.WithContext(ctx).Where("lesson_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]model.LessonModel, len(rows))
	for _, r := range rows {
		byID[r.LessonID] = r
	}
	out := make([]model.LessonModel, 0, len(rows))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// Reindex pushes the lesson to the search index. Index failures are logged only.
func Reindex(ctx context.Context, db *gorm.DB, lesson model.LessonModel) {
	idx := search.Lessons
	if idx == nil {
		return
	}
	var categoryName string
	if err := db.WithContext(ctx).Table("categories").
		Select("category_name").
		Where("category_id = ?", lesson.LessonCategoryID).
		Scan(&categoryName).Error; err != nil {
		logger.Log.WithError(err).WithField("lesson_id", lesson.LessonID).Warn("category lookup for reindex failed")
	}

	err := idx.Upsert(ctx, search.LessonDoc{
		ID:           lesson.LessonID,
		CategoryID:   lesson.LessonCategoryID,
		CategoryName: categoryName,
		Title:        lesson.LessonTitle,
		Description:  lesson.LessonDescription,
	})
	if err != nil {
		logger.Log.WithError(err).WithField("lesson_id", lesson.LessonID).Warn("reindex lesson failed")
	}
}

func Unindex(ctx context.Context, id uuid.UUID) {
	if idx := search.Lessons; idx != nil {
		if err := idx.Delete(ctx, id); err != nil {
			logger.Log.WithError(err).WithField("lesson_id", id).Warn("unindex lesson failed")
		}
	}
}
