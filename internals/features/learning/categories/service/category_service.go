package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/learning/categories/dto"
	"capacitajun_backend/internals/features/learning/categories/model"
	helper "capacitajun_backend/internals/helpers"
)

// ProgressByCategory counts lessons and the user's passing completions per category in one grouped query.
func ProgressByCategory(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]dto.CategoryProgress, error) {
	var rows []dto.CategoryProgress
	err := db.WithContext(ctx).
		Table("categories AS c").
		Select(`c.category_id, c.category_name, c.category_slug, c.category_description, c.category_icon, c.category_order_index,
			COUNT(l.lesson_id) AS total_lessons,
			COUNT(lc.lesson_completion_id) AS completed_lessons`).
		Joins("LEFT JOIN lessons l ON l.lesson_category_id = c.category_id AND l.deleted_at IS NULL").
		Joins(`LEFT JOIN lesson_completions lc ON lc.lesson_completion_lesson_id = l.lesson_id
			AND lc.lesson_completion_user_id = ? AND lc.lesson_completion_score >= ?`, userID, constants.PassingScore).
		Where("c.deleted_at IS NULL").
		Group("c.category_id").
		Order("c.category_order_index ASC, c.category_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].TotalLessons > 0 {
			rows[i].Percent = float64(rows[i].CompletedLessons) / float64(rows[i].TotalLessons) * 100
		}
	}
	return rows, nil
}

func GetCategory(ctx context.Context, db *gorm.DB, id uuid.UUID) (model.CategoryModel, error) {
	var m model.CategoryModel
	err := db.WithContext(ctx).Where("category_id = ?", id).Take(&m).Error
	return m, err
}

// UniqueSlug derives a slug from name that no other live category uses.
func UniqueSlug(ctx context.Context, db *gorm.DB, name string, exclude *uuid.UUID) (string, error) {
	base := helper.Slugify(name, 120)
	return helper.EnsureUniqueSlugCI(ctx, db, "categories", "category_slug", base, func(q *gorm.DB) *gorm.DB {
		q = q.Where("deleted_at IS NULL")
		if exclude != nil {
			q = q.Where("category_id <> ?", *exclude)
		}
		return q
	}, 120)
}
