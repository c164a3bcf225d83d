package dto

import (
	"time"

	"github.com/google/uuid"

	"capacitajun_backend/internals/features/learning/lessons/model"
	"capacitajun_backend/internals/features/learning/lessons/service"
)

type CreateLessonRequest struct {
	CategoryID      uuid.UUID `json:"category_id" validate:"required"`
	Title           string    `json:"title" validate:"required,min=3,max=200"`
	Description     string    `json:"description"`
	VideoURL        *string   `json:"video_url" validate:"omitempty,url"`
	ExternalURL     *string   `json:"external_url" validate:"omitempty,url"`
	OrderIndex      int       `json:"order_index" validate:"min=0"`
	DurationMinutes int       `json:"duration_minutes" validate:"min=0,max=600"`
}

func (r CreateLessonRequest) ToModel() model.LessonModel {
	return model.LessonModel{
		LessonCategoryID:      r.CategoryID,
		LessonTitle:           r.Title,
		LessonDescription:     r.Description,
		LessonVideoURL:        r.VideoURL,
		LessonExternalURL:     r.ExternalURL,
		LessonOrderIndex:      r.OrderIndex,
		LessonDurationMinutes: r.DurationMinutes,
	}
}

type UpdateLessonRequest struct {
	CategoryID      *uuid.UUID `json:"category_id"`
	Title           *string    `json:"title" validate:"omitempty,min=3,max=200"`
	Description     *string    `json:"description"`
	VideoURL        *string    `json:"video_url" validate:"omitempty,url"`
	ExternalURL     *string    `json:"external_url" validate:"omitempty,url"`
	OrderIndex      *int       `json:"order_index" validate:"omitempty,min=0"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,min=0,max=600"`
}

func (r UpdateLessonRequest) Apply(m *model.LessonModel) {
	if r.CategoryID != nil {
		m.LessonCategoryID = *r.CategoryID
	}
	if r.Title != nil {
		m.LessonTitle = *r.Title
	}
	if r.Description != nil {
		m.LessonDescription = *r.Description
	}
	if r.VideoURL != nil {
		m.LessonVideoURL = emptyToNil(*r.VideoURL)
	}
	if r.ExternalURL != nil {
		m.LessonExternalURL = emptyToNil(*r.ExternalURL)
	}
	if r.OrderIndex != nil {
		m.LessonOrderIndex = *r.OrderIndex
	}
	if r.DurationMinutes != nil {
		m.LessonDurationMinutes = *r.DurationMinutes
	}
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type ReorderLessonRequest struct {
	OrderIndex *int `json:"order_index" validate:"required,min=0"`
}

type LessonResponse struct {
	ID              uuid.UUID      `json:"id"`
	CategoryID      uuid.UUID      `json:"category_id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	VideoURL        *string        `json:"video_url,omitempty"`
	ExternalURL     *string        `json:"external_url,omitempty"`
	Embed           *service.Embed `json:"embed,omitempty"`
	OrderIndex      int            `json:"order_index"`
	DurationMinutes int            `json:"duration_minutes"`
	QuestionCount   int            `json:"question_count"`
	Status          string         `json:"status,omitempty"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func ToLessonResponse(m model.LessonModel) LessonResponse {
	resp := LessonResponse{
		ID:              m.LessonID,
		CategoryID:      m.LessonCategoryID,
		Title:           m.LessonTitle,
		Description:     m.LessonDescription,
		VideoURL:        m.LessonVideoURL,
		ExternalURL:     m.LessonExternalURL,
		OrderIndex:      m.LessonOrderIndex,
		DurationMinutes: m.LessonDurationMinutes,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.LessonVideoURL != nil {
		resp.Embed = service.ClassifyVideo(*m.LessonVideoURL)
	}
	return resp
}
