package dto

import (
	"github.com/google/uuid"

	"capacitajun_backend/internals/features/learning/categories/model"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=80"`
	OrderIndex  int    `json:"order_index" validate:"min=0"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Description *string `json:"description"`
	Icon        *string `json:"icon" validate:"omitempty,max=80"`
	OrderIndex  *int    `json:"order_index" validate:"omitempty,min=0"`
}

func (r UpdateCategoryRequest) Apply(m *model.CategoryModel) {
	if r.Name != nil {
		m.CategoryName = *r.Name
	}
	if r.Description != nil {
		m.CategoryDescription = *r.Description
	}
	if r.Icon != nil {
		m.CategoryIcon = *r.Icon
	}
	if r.OrderIndex != nil {
		m.CategoryOrderIndex = *r.OrderIndex
	}
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	OrderIndex  int       `json:"order_index"`
}

func ToCategoryResponse(m model.CategoryModel) CategoryResponse {
	return CategoryResponse{
		ID:          m.CategoryID,
		Name:        m.CategoryName,
		Slug:        m.CategorySlug,
		Description: m.CategoryDescription,
		Icon:        m.CategoryIcon,
		OrderIndex:  m.CategoryOrderIndex,
	}
}

// CategoryProgress is one category with the caller's passed/total lesson counts.
type CategoryProgress struct {
	CategoryID       uuid.UUID `json:"category_id" gorm:"column:category_id"`
	Name             string    `json:"name" gorm:"column:category_name"`
	Slug             string    `json:"slug" gorm:"column:category_slug"`
	Description      string    `json:"description" gorm:"column:category_description"`
	Icon             string    `json:"icon" gorm:"column:category_icon"`
	OrderIndex       int       `json:"order_index" gorm:"column:category_order_index"`
	TotalLessons     int       `json:"total_lessons" gorm:"column:total_lessons"`
	CompletedLessons int       `json:"completed_lessons" gorm:"column:completed_lessons"`
	Percent          float64   `json:"percent" gorm:"-"`
}
