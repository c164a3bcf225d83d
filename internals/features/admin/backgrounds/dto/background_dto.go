package dto

import (
	"time"

	"github.com/google/uuid"

	"capacitajun_backend/internals/features/admin/backgrounds/model"
)

type PatchBackgroundRequest struct {
	IsActive *bool `json:"is_active"`
	Order    *int  `json:"order" validate:"omitempty,gte=0,lte=1000"`
}

type BackgroundResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	IsActive  bool      `json:"is_active"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

func ToBackgroundResponse(m model.BackgroundImageModel) BackgroundResponse {
	return BackgroundResponse{
		ID:        m.BackgroundImageID,
		URL:       m.BackgroundImageURL,
		IsActive:  m.BackgroundImageIsActive,
		Order:     m.BackgroundImageOrder,
		CreatedAt: m.CreatedAt,
	}
}

func ToBackgroundResponses(ms []model.BackgroundImageModel) []BackgroundResponse {
	out := make([]BackgroundResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToBackgroundResponse(m))
	}
	return out
}
